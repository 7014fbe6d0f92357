package expr

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	"github.com/google/cel-go/ext"
)

type lib struct{}

func (lib) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		ext.Lists(),
		ext.Strings(),

		// `count` returns the number of true elements of a bool list.
		// Example: count([s.headache, s.nausea, s.vomiting]) >= 2.
		cel.Function("count",
			cel.Overload("count_list_bool", []*cel.Type{cel.ListType(cel.BoolType)}, cel.IntType,
				cel.UnaryBinding(func(list ref.Val) ref.Val {
					lister, ok := list.(traits.Lister)
					if !ok {
						return types.NewErr("count: invalid list")
					}

					size, ok := lister.Size().(types.Int)
					if !ok {
						return types.NewErr("count: invalid list size")
					}

					var n int64
					for i := range size {
						b, ok := lister.Get(i).(types.Bool)
						if !ok {
							return types.NewErr("count: invalid list element")
						}
						if b {
							n++
						}
					}

					return types.Int(n)
				}),
			),
		),
	}
}

func (lib) ProgramOptions() []cel.ProgramOption {
	return []cel.ProgramOption{}
}
