package dto

import (
	"bytes"
	"delivery-simulation-service/internal/domain"
	"encoding/json"
	"strconv"
	"strings"
)

type AgentReportResponse struct {
	AgentID           domain.ID   `json:"agent_id"`
	PackagesDelivered int         `json:"packages_delivered"`
	TotalDistance     json.Number `json:"total_distance"`
	Efficiency        json.Number `json:"efficiency"`
}

// ReportResponse is the wire form of a report. Field order is part of the
// contract with existing consumers.
type ReportResponse struct {
	Agents    []AgentReportResponse `json:"agents"`
	BestAgent *domain.ID            `json:"best_agent"`
}

// NewReportResponse renders metrics the way report consumers expect them:
// idle agents carry integer zeros, everyone else carries floats with at least
// one fractional digit (5.0 rather than 5).
func NewReportResponse(r *domain.Report) ReportResponse {
	res := ReportResponse{
		Agents:    make([]AgentReportResponse, 0, len(r.Agents)),
		BestAgent: r.BestAgent,
	}

	for _, a := range r.Agents {
		ar := AgentReportResponse{
			AgentID:           a.AgentID,
			PackagesDelivered: a.PackagesDelivered,
			TotalDistance:     "0",
			Efficiency:        "0",
		}
		if a.PackagesDelivered > 0 {
			ar.TotalDistance = floatNumber(a.TotalDistance)
			ar.Efficiency = floatNumber(a.Efficiency)
		}
		res.Agents = append(res.Agents, ar)
	}

	return res
}

// floatNumber renders the shortest round-tripping digits, switching to
// exponent form below 1e-4 and from 1e16 up (1e+16, 1.5e-05).
func floatNumber(v float64) json.Number {
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return json.Number(sci)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return json.Number(s)
}

// MarshalReport encodes a report with four-space indentation. HTML characters
// are left unescaped; string ids escape non-ASCII themselves.
func MarshalReport(r *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(NewReportResponse(r)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
