package affine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// animationSpec is one entry of an animation script.
type animationSpec struct {
	Name     string     `yaml:"name"`
	From     *Operation `yaml:"from"`
	To       *Operation `yaml:"to"`
	Duration float32    `yaml:"duration"`
	Ease     string     `yaml:"ease"`
	Debug    bool       `yaml:"debug"`
}

// animationScript is the top-level YAML structure of an animation script.
type animationScript struct {
	Animations []animationSpec `yaml:"animations"`
}

// LoadAnimations parses a YAML animation script and returns one Animation per
// entry, in script order:
//
//	animations:
//	  - name: slide
//	    from: {translate: [0, 0]}
//	    to: {translate: [120, 40]}
//	    duration: 1.5
//	    ease: inOutCubic
//	  - name: fade-out-spin
//	    from: {rotate: 90deg}
//	    duration: 1
//
// A missing from or to is an absent (identity) endpoint. ease defaults to
// linear.
func LoadAnimations(yamlData []byte) ([]*Animation, error) {
	var script animationScript
	if err := yaml.Unmarshal(yamlData, &script); err != nil {
		return nil, fmt.Errorf("parse animation script: %w", err)
	}
	if len(script.Animations) == 0 {
		return nil, fmt.Errorf("parse animation script: no animations")
	}

	seen := make(map[string]bool, len(script.Animations))
	anims := make([]*Animation, 0, len(script.Animations))
	for i, entry := range script.Animations {
		if entry.Name != "" {
			if seen[entry.Name] {
				return nil, fmt.Errorf("parse animation script: duplicate animation %q", entry.Name)
			}
			seen[entry.Name] = true
		}
		if d := float64(entry.Duration); d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("parse animation script: animation %d (%q): duration must be positive and finite", i, entry.Name)
		}
		fn, ok := EaseByName(entry.Ease)
		if !ok {
			return nil, fmt.Errorf("parse animation script: animation %d (%q): unknown ease %q", i, entry.Name, entry.Ease)
		}
		a := NewAnimation(entry.From, entry.To, entry.Duration, fn)
		a.Name = entry.Name
		a.Debug = entry.Debug
		anims = append(anims, a)
	}
	return anims, nil
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// EaseByName returns the gween easing function with the given camel-case name
// ("linear", "inOutCubic", "outBounce", ...). An empty name means linear.
func EaseByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easeFuncs[name]
	return fn, ok
}

// MarshalYAML encodes the operation as a single-key mapping, or the scalar
// "identity".
func (o Operation) MarshalYAML() (interface{}, error) {
	switch o.kind {
	case OperationTranslate, OperationScale, OperationSkew:
		return map[string][]float64{o.kind.String(): {o.vec.X, o.vec.Y}}, nil
	case OperationRotate:
		return map[string]float64{"rotate": o.angle}, nil
	case OperationMatrix:
		return map[string][]float64{"matrix": o.matrix[:]}, nil
	default:
		return "identity", nil
	}
}

// UnmarshalYAML decodes the forms written by MarshalYAML. Angles (rotate and
// skew) may also be written as strings with a "deg" or "rad" suffix, and
// scale accepts a single number for uniform scaling.
func (o *Operation) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "identity" {
			*o = NewIdentity()
			return nil
		}
		return fmt.Errorf("line %d: unknown operation %q", value.Line, value.Value)
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: operation must be a mapping or \"identity\"", value.Line)
	}

	if len(value.Content) != 2 {
		return fmt.Errorf("line %d: operation must have exactly one kind", value.Line)
	}
	name, body := value.Content[0].Value, value.Content[1]
	kind, ok := parseOperationKind(name)
	if !ok {
		return fmt.Errorf("line %d: unknown operation kind %q", value.Line, name)
	}

	switch kind {
	case OperationTranslate:
		v, err := decodeFloats(body, 2, strconv.ParseFloat)
		if err != nil {
			return err
		}
		*o = NewTranslate(v[0], v[1])
	case OperationRotate:
		if body.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: rotate takes a single angle", body.Line)
		}
		angle, err := parseAngle(body.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: rotate: %w", body.Line, err)
		}
		*o = NewRotate(angle)
	case OperationScale:
		if body.Kind == yaml.ScalarNode {
			s, err := strconv.ParseFloat(body.Value, 64)
			if err != nil {
				return fmt.Errorf("line %d: scale: %w", body.Line, err)
			}
			*o = NewScale(s, s)
			return nil
		}
		v, err := decodeFloats(body, 2, strconv.ParseFloat)
		if err != nil {
			return err
		}
		*o = NewScale(v[0], v[1])
	case OperationSkew:
		v, err := decodeFloats(body, 2, parseAngle)
		if err != nil {
			return err
		}
		*o = NewSkew(v[0], v[1])
	case OperationMatrix:
		v, err := decodeFloats(body, 6, strconv.ParseFloat)
		if err != nil {
			return err
		}
		var m Matrix
		copy(m[:], v)
		*o = NewMatrix(m)
	default:
		if body.ShortTag() != "!!null" && !(body.Kind == yaml.MappingNode && len(body.Content) == 0) {
			return fmt.Errorf("line %d: identity takes no arguments", body.Line)
		}
		*o = NewIdentity()
	}
	return nil
}

// decodeFloats reads a sequence of exactly n scalars using parse.
func decodeFloats(node *yaml.Node, n int, parse func(string, int) (float64, error)) ([]float64, error) {
	if node.Kind != yaml.SequenceNode || len(node.Content) != n {
		return nil, fmt.Errorf("line %d: expected a list of %d numbers", node.Line, n)
	}
	out := make([]float64, n)
	for i, item := range node.Content {
		v, err := parse(item.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseAngle parses radians, or degrees when suffixed with "deg".
func parseAngle(s string, bitSize int) (float64, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "deg"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "deg")), bitSize)
		return v * math.Pi / 180, err
	case strings.HasSuffix(s, "rad"):
		return strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "rad")), bitSize)
	default:
		return strconv.ParseFloat(s, bitSize)
	}
}
