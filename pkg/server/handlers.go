package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/report"
	"github.com/machakos/malaria/pkg/symptom"
)

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Symptoms symptom.Set     `json:"symptoms"`
	Message  string          `json:"message"`
	Detected []string        `json:"detected"`
	Matches  []extract.Match `json:"matches"`
}

type diagnoseRequest struct {
	Symptoms map[string]bool `json:"symptoms"`
	Text     string          `json:"text"`
}

type diagnoseResponse struct {
	diagnosis.Result

	Disclaimer string   `json:"disclaimer"`
	Detected   []string `json:"detected"`
	Ignored    []string `json:"ignored"`
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleSymptoms(c fiber.Ctx) error {
	return jsonSuccess(c, report.Symptoms(s.extractor.Dictionary()))
}

func (s *Server) handleExtract(c fiber.Ctx) error {
	var body extractRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	det := s.extract(body.Text)

	resp := extractResponse{
		Symptoms: det.Symptoms,
		Detected: det.Symptoms.Names(),
		Matches:  det.Matches,
	}
	if det.Empty() {
		resp.Message = extract.NoneDetected
	}

	return jsonSuccess(c, resp)
}

func (s *Server) handleDiagnose(c fiber.Ctx) error {
	strict, err := strconv.ParseBool(c.Query("strict", "false"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid strict parameter")
	}

	var body diagnoseRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Neither symptoms nor text diagnoses the empty set.
	set, ignored := symptom.FromMap(body.Symptoms)
	if strict && len(ignored) > 0 {
		return jsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("%s: %s", symptom.ErrUnknownSymptom, strings.Join(ignored, ", ")))
	}

	if text := strings.TrimSpace(body.Text); text != "" {
		set = set.With(s.extract(text).Symptoms.Present()...)
	}

	res := s.engine.Diagnose(set)
	s.metrics.recordDiagnosis(res)

	if ignored == nil {
		ignored = []string{}
	}

	return jsonSuccess(c, diagnoseResponse{
		Result:     res,
		Disclaimer: diagnosis.Disclaimer,
		Detected:   set.Names(),
		Ignored:    ignored,
	})
}

func (s *Server) extract(text string) extract.Detection {
	det := s.extractor.Extract(text)
	s.metrics.recordExtraction(det)

	return det
}
