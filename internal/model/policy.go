package model

import (
	"fmt"
	"math"
	"strings"
)

// Method is the corruption model tag.
type Method string

const (
	// Flip inverts every pixel independently with probability P.
	Flip Method = "flip"
	// Crop clears everything outside a centered box.
	Crop Method = "crop"
)

const (
	// DefaultP is the default flip probability.
	DefaultP = 0.3
	// DefaultBox is the default side of the crop box.
	DefaultBox = 10
)

// Box is the crop bounding box size.
type Box struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (b Box) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Policy describes how a pattern should be corrupted.
// Only the parameter matching the Method is taken into account.
type Policy struct {
	Method Method  `json:"method" yaml:"method"`
	P      float64 `json:"p" yaml:"p"`
	Box    Box     `json:"box" yaml:"box"`
}

// DefaultPolicy flips pixels with probability 0.3.
func DefaultPolicy() Policy {
	return Policy{
		Method: Flip,
		P:      DefaultP,
		Box:    Box{Width: DefaultBox, Height: DefaultBox},
	}
}

// FlipPolicy creates a flip policy for the given probability.
func FlipPolicy(p float64) Policy {
	return Policy{Method: Flip, P: p}
}

// CropPolicy creates a crop policy for the given box.
func CropPolicy(width, height int) Policy {
	return Policy{Method: Crop, Box: Box{Width: width, Height: height}}
}

// ParseMethod normalises a method tag, it does not check that the method is known.
func ParseMethod(method string) Method {
	return Method(strings.ToLower(strings.TrimSpace(method)))
}

// ParsePolicy creates a policy from its textual method tag.
func ParsePolicy(method string, p float64, width, height int) (Policy, error) {
	var policy Policy
	switch m := ParseMethod(method); m {
	case Flip:
		policy = FlipPolicy(p)
	case Crop:
		policy = CropPolicy(width, height)
	default:
		return Policy{}, fmt.Errorf("unknown corruption method '%s': %w", method, InvalidInputErr)
	}
	return policy, policy.Validate()
}

// ParseBox parses a box given as "<width>x<height>".
func ParseBox(s string) (Box, error) {
	var b Box
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &b.Width, &b.Height); err != nil {
		return Box{}, fmt.Errorf("could not parse box '%s': %v: %w", s, err, InvalidInputErr)
	}
	return b, nil
}

// Validate checks the parameters of the policy method.
func (p Policy) Validate() error {
	switch p.Method {
	case Flip:
		if math.IsNaN(p.P) || p.P < 0 || p.P > 1 {
			return fmt.Errorf("flip probability %v outside [0,1]: %w", p.P, InvalidInputErr)
		}
	case Crop:
		if p.Box.Width < 0 || p.Box.Height < 0 || p.Box.Width > Width || p.Box.Height > Height {
			return fmt.Errorf("crop box %s does not fit the %dx%d grid: %w", p.Box, Width, Height, InvalidInputErr)
		}
	default:
		return fmt.Errorf("unknown corruption method '%s': %w", p.Method, InvalidInputErr)
	}
	return nil
}

func (p Policy) String() string {
	switch p.Method {
	case Flip:
		return fmt.Sprintf("%s(%.2f)", p.Method, p.P)
	case Crop:
		return fmt.Sprintf("%s(%s)", p.Method, p.Box)
	}
	return string(p.Method)
}
