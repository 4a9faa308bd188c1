package profile

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/veskar/featdist/align"
	"github.com/veskar/featdist/contour"
	"github.com/veskar/featdist/cost"
	"github.com/veskar/featdist/feature"
	"github.com/veskar/featdist/hausdorff"
	"github.com/veskar/featdist/ordpres"
)

// Load reads and parses a profile file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "profile: read %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "profile: parse %s", path)
	}

	return p, nil
}

// Parse overlays the YAML document on Default(). Unknown keys are rejected;
// an empty document yields the defaults unchanged. The result is validated.
func Parse(data []byte) (Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Profile{}, errors.Wrap(err, "profile: decode")
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Validate checks the name fields and the grid parameters. Numeric option
// invariants are enforced again by each engine on use.
func (p Profile) Validate() error {
	if _, err := p.CostModel(); err != nil {
		return err
	}
	if _, err := parseMode(p.Align.Mode); err != nil {
		return err
	}
	if _, err := parseAssignment(p.Ordpres.Assignment); err != nil {
		return err
	}
	if _, err := p.Grid(); err != nil {
		return err
	}

	return nil
}

// CostModel builds the configured substitution cost model.
func (p Profile) CostModel() (cost.Model, error) {
	c := p.Cost
	switch c.Model {
	case "equality":
		return cost.Equality{
			MatchThreshold:  c.MatchThreshold,
			ApproxThreshold: c.ApproxThreshold,
			MatchCost:       c.MatchCost,
			OpenCost:        c.OpenCost,
			ContinueCost:    c.ContinueCost,
			Distance:        feature.PositionDistance,
		}, nil
	case "decay":
		return cost.Decay{
			MaxCost:      c.MatchCost,
			Falloff:      c.Falloff,
			OpenCost:     c.OpenCost,
			ContinueCost: c.ContinueCost,
			Distance:     feature.PositionDistance,
		}, nil
	case "cluster":
		return cost.Cluster{
			MatchCost:    c.MatchCost,
			OpenCost:     c.OpenCost,
			ContinueCost: c.ContinueCost,
		}, nil
	default:
		return nil, ErrBadModel
	}
}

// AlignOptions translates the align and cost sections.
func (p Profile) AlignOptions() (align.Options, error) {
	mode, err := parseMode(p.Align.Mode)
	if err != nil {
		return align.Options{}, err
	}
	model, err := p.CostModel()
	if err != nil {
		return align.Options{}, err
	}

	return align.Options{
		Mode:        mode,
		Model:       model,
		Parallelism: p.Align.Parallelism,
	}, nil
}

// Grid translates the window section into a tiling grid.
func (p Profile) Grid() (feature.Grid, error) {
	return feature.NewGrid(p.Window.Width, p.Window.Height, p.Window.ShiftX, p.Window.ShiftY)
}

// HausdorffOptions translates the hausdorff section.
func (p Profile) HausdorffOptions() hausdorff.Options {
	return hausdorff.Options{
		Metric:   feature.PositionDistance,
		Max:      p.Hausdorff.Max,
		SumAbort: p.Hausdorff.SumAbort,
	}
}

// OrdpresOptions translates the ordpres section.
func (p Profile) OrdpresOptions() (ordpres.Options, error) {
	assign, err := parseAssignment(p.Ordpres.Assignment)
	if err != nil {
		return ordpres.Options{}, err
	}

	return ordpres.Options{
		Epsilon:       p.Ordpres.Epsilon,
		MinAnchors:    p.Ordpres.MinAnchors,
		MinMatches:    p.Ordpres.MinMatches,
		QueryFeatures: p.Ordpres.QueryFeatures,
		Expand:        p.Ordpres.Expand,
		Assignment:    assign,
		Max:           p.Ordpres.Max,
	}, nil
}

// ContourOptions translates the contour section.
func (p Profile) ContourOptions() contour.Options {
	return contour.Options{Max: p.Contour.Max}
}

func parseMode(name string) (align.Mode, error) {
	switch name {
	case "smith-waterman":
		return align.Local, nil
	case "needleman-wunsch":
		return align.Global, nil
	default:
		return 0, ErrBadMode
	}
}

func parseAssignment(name string) (ordpres.Assignment, error) {
	switch name {
	case "greedy":
		return ordpres.AssignGreedy, nil
	case "hungarian":
		return ordpres.AssignHungarian, nil
	default:
		return 0, ErrBadAssignment
	}
}
