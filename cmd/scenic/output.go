package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/poiesic/scenic/core"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type descriptionReport struct {
	Content         string             `json:"content" yaml:"content"`
	Type            string             `json:"type" yaml:"type"`
	Confidence      float64            `json:"confidence_score" yaml:"confidence_score"`
	Priority        float64            `json:"priority_score" yaml:"priority_score"`
	SourceEngine    string             `json:"source_engine" yaml:"source_engine"`
	Entities        []string           `json:"entities_mentioned,omitempty" yaml:"entities_mentioned,omitempty"`
	Position        int                `json:"position" yaml:"position"`
	EndPosition     int                `json:"end_position" yaml:"end_position"`
	Consensus       float64            `json:"consensus_ratio,omitempty" yaml:"consensus_ratio,omitempty"`
	Quality         string             `json:"quality,omitempty" yaml:"quality,omitempty"`
	Contributors    []string           `json:"contributing_engines,omitempty" yaml:"contributing_engines,omitempty"`
	ScoreBreakdown  map[string]float64 `json:"score_breakdown,omitempty" yaml:"score_breakdown,omitempty"`
	Attributes      map[string]string  `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type resultReport struct {
	RunID           string              `json:"run_id" yaml:"run_id"`
	ChapterID       string              `json:"chapter_id" yaml:"chapter_id"`
	Mode            string              `json:"mode" yaml:"mode"`
	Duration        string              `json:"processing_time" yaml:"processing_time"`
	Engines         []string            `json:"processors_used" yaml:"processors_used"`
	Quality         map[string]float64  `json:"quality_metrics" yaml:"quality_metrics"`
	Failures        map[string]string   `json:"failures,omitempty" yaml:"failures,omitempty"`
	Recommendations []string            `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Descriptions    []descriptionReport `json:"descriptions" yaml:"descriptions"`
	Error           string              `json:"error,omitempty" yaml:"error,omitempty"`
}

type engineReport struct {
	Name        string  `json:"name" yaml:"name"`
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	Initialized bool    `json:"initialized" yaml:"initialized"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Threshold   float64 `json:"confidence_threshold" yaml:"confidence_threshold"`
	MinLength   int     `json:"min_length" yaml:"min_length"`
	MaxLength   int     `json:"max_length" yaml:"max_length"`
}

func newResultReport(r *core.ProcessingResult) resultReport {
	out := resultReport{
		RunID:           r.RunID,
		ChapterID:       r.ChapterID,
		Mode:            string(r.Mode),
		Duration:        r.ProcessingTime.String(),
		Engines:         r.ProcessorsUsed,
		Quality:         r.QualityMetrics,
		Failures:        r.Failures,
		Recommendations: r.Recommendations,
		Descriptions:    make([]descriptionReport, 0, len(r.Descriptions)),
	}
	for _, d := range r.Descriptions {
		out.Descriptions = append(out.Descriptions, descriptionReport{
			Content:        d.Content,
			Type:           string(d.Type),
			Confidence:     d.ConfidenceScore,
			Priority:       d.PriorityScore,
			SourceEngine:   d.SourceEngine,
			Entities:       d.EntitiesMentioned,
			Position:       d.Position,
			EndPosition:    d.EndPosition,
			Consensus:      d.ConsensusRatio,
			Quality:        string(d.QualityIndicator),
			Contributors:   d.ContributingEngines,
			ScoreBreakdown: d.Metadata.ScoreBreakdown,
			Attributes:     d.Metadata.Attributes,
		})
	}
	return out
}

func writeReport(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("invalid format %q: must be one of yaml, json", format)
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
