package config

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind names one of the tag groups a reformulation is steered by.
type Kind string

const (
	KindTone     Kind = "tone"
	KindFormat   Kind = "format"
	KindLength   Kind = "length"
	KindLanguage Kind = "language"
)

var Kinds = []Kind{KindTone, KindFormat, KindLength, KindLanguage}

var (
	DefaultTones     = []string{"Professionnel", "Informatif", "Décontracté", "Enthousiaste", "Drôle", "Sarcastique"}
	DefaultFormats   = []string{"Mail", "Paragraphe", "Idées", "Article de blog"}
	DefaultLengths   = []string{"Court", "Moyen", "Long"}
	DefaultLanguages = []string{"Anglais", "Français", "Espagnol", "Allemand", "Italien"}
)

var (
	ErrUnknownTag  = errors.New("unknown tag")
	ErrUnknownKind = errors.New("unknown tag kind")
	ErrLastTag     = errors.New("cannot remove the last tag of a group")
)

type TagsConfig struct {
	Tones     []string `yaml:"tones"`
	Formats   []string `yaml:"formats"`
	Lengths   []string `yaml:"lengths"`
	Languages []string `yaml:"languages"`
	// Strict rejects labels that are not part of the configured sets.
	Strict bool `yaml:"strict,omitempty"`
}

// TagSet is an open set of labels. The first label is the default selection.
type TagSet struct {
	Kind   Kind
	Labels []string
	Strict bool
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

func (t *TagsConfig) Set(kind Kind) TagSet {
	return TagSet{Kind: kind, Labels: *t.labels(kind), Strict: t.Strict}
}

func (t *TagsConfig) labels(kind Kind) *[]string {
	switch kind {
	case KindFormat:
		return &t.Formats
	case KindLength:
		return &t.Lengths
	case KindLanguage:
		return &t.Languages
	default:
		return &t.Tones
	}
}

// Add appends label to the group unless an equal label already exists.
// It reports whether the set changed.
func (t *TagsConfig) Add(kind Kind, label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	set := t.labels(kind)
	for _, existing := range *set {
		if strings.EqualFold(existing, label) {
			return false
		}
	}
	*set = append(*set, label)
	return true
}

func (t *TagsConfig) Remove(kind Kind, label string) error {
	set := t.labels(kind)
	for i, existing := range *set {
		if !strings.EqualFold(existing, strings.TrimSpace(label)) {
			continue
		}
		if len(*set) == 1 {
			return ErrLastTag
		}
		*set = append((*set)[:i], (*set)[i+1:]...)
		return nil
	}
	return errors.Wrapf(ErrUnknownTag, "%s %q", kind, label)
}

func (s TagSet) Default() string {
	if len(s.Labels) == 0 {
		return ""
	}
	return s.Labels[0]
}

// Resolve maps a user supplied label onto the set. Blank values select the
// default label, known labels are returned with their configured spelling and
// unknown labels pass through verbatim unless the set is strict.
func (s TagSet) Resolve(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.Default(), nil
	}
	for _, label := range s.Labels {
		if strings.EqualFold(label, value) {
			return label, nil
		}
	}
	if s.Strict {
		return "", errors.Wrapf(ErrUnknownTag, "%s %q", s.Kind, value)
	}
	return value, nil
}
