package svsyntax

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordOverrides lets a caller extend or retract the built-in keyword
// table from a YAML file: a project parsing a vendor dialect with extra
// reserved words (or an early standard draft with words not yet
// reserved) can describe the delta declaratively instead of patching Go
// source.
type KeywordOverrides struct {
	// Add maps an extra reserved word to the Version it becomes active
	// from.
	Add map[string]string `yaml:"add"`
	// Remove lists built-in keywords to un-reserve entirely.
	Remove []string `yaml:"remove"`
}

// ParseVersionName maps a CLI/config-facing version string ("2001",
// "2017", ...) to its Version constant.
func ParseVersionName(name string) (Version, error) {
	return parseVersionName(name)
}

func parseVersionName(name string) (Version, error) {
	switch name {
	case "1995":
		return V1995, nil
	case "2001":
		return V2001, nil
	case "2005":
		return V2005, nil
	case "2009":
		return V2009, nil
	case "2012":
		return V2012, nil
	case "2017":
		return V2017, nil
	default:
		return 0, fmt.Errorf("unknown language version %q", name)
	}
}

// LoadKeywordOverrides reads and parses a YAML keyword-override file. It
// does not apply the overrides; call Apply on the result against a
// KeywordSet.
func LoadKeywordOverrides(path string) (KeywordOverrides, error) {
	var out KeywordOverrides
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return KeywordOverrides{}, fmt.Errorf("no keyword override file found at %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return KeywordOverrides{}, err
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return KeywordOverrides{}, err
	}
	return out, nil
}

// Apply returns a new KeywordSet with o's additions and removals layered
// on top of base.
func (o KeywordOverrides) Apply(base *KeywordSet) (*KeywordSet, error) {
	words := make(map[string]keywordInfo, len(base.words))
	for k, v := range base.words {
		words[k] = v
	}
	for word, versionName := range o.Add {
		v, err := parseVersionName(versionName)
		if err != nil {
			return nil, fmt.Errorf("keyword override %q: %w", word, err)
		}
		words[word] = keywordInfo{introducedIn: v}
	}
	for _, word := range o.Remove {
		delete(words, word)
	}
	return &KeywordSet{version: base.version, words: words}, nil
}
