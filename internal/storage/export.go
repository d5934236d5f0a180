package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Run      RunMetadata `json:"run"`
	Links    []int       `json:"links"`
	Resets   []int       `json:"resets"`
	Repelled []int       `json:"repelled"`
	Alpha    []float64   `json:"mean_alpha"`
}

// Export gathers a stored run into column form.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Run:      *meta,
		Links:    make([]int, len(frames)),
		Resets:   make([]int, len(frames)),
		Repelled: make([]int, len(frames)),
		Alpha:    make([]float64, len(frames)),
	}
	for i, f := range frames {
		data.Links[i] = f.Links
		data.Resets[i] = f.Resets
		data.Repelled[i] = f.Repelled
		data.Alpha[i] = f.MeanAlpha
	}
	return data, nil
}

func (s *Store) ExportJSON(w io.Writer, runID string) error {
	data, err := s.Export(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (s *Store) ExportJSONFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(f, runID)
}
