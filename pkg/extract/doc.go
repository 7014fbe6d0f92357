// Package extract detects symptoms in free-form text with keyword
// dictionaries.
//
// Matching is plain case-insensitive substring presence, not language
// understanding. A phrase matches anywhere in the text, including inside
// other words: "hot" matches "shot", and "cold sweats" sets chills. This
// imprecision is part of the contract.
package extract
