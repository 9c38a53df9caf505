package record

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed contract_body.md
var defaultBody string

// UserConfig holds the editable text of the contract and the confirmation
// phrase. Saving overwrites the whole record; reset restores Defaults.
type UserConfig struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Closing string `json:"closing"`
	Prompt  string `json:"prompt"`
	Phrase  string `json:"phrase"`
}

// Defaults returns the built-in configuration.
func Defaults() UserConfig {
	return UserConfig{
		Name:    "Samridh Limbu",
		Title:   "Acknowledgement Force Daily Contract",
		Body:    strings.TrimSpace(defaultBody),
		Closing: "I am Samridh Limbu. I commit to this contract for today.",
		Prompt:  "Type the phrase below to begin:",
		Phrase:  "I acknowledge that I will begin now.",
	}
}

// WithDefaults fills empty fields from Defaults.
func (c UserConfig) WithDefaults() UserConfig {
	d := Defaults()
	if strings.TrimSpace(c.Name) == "" {
		c.Name = d.Name
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = d.Title
	}
	if strings.TrimSpace(c.Body) == "" {
		c.Body = d.Body
	}
	if strings.TrimSpace(c.Closing) == "" {
		c.Closing = d.Closing
	}
	if strings.TrimSpace(c.Prompt) == "" {
		c.Prompt = d.Prompt
	}
	if strings.TrimSpace(c.Phrase) == "" {
		c.Phrase = d.Phrase
	}
	return c
}

var configFields = map[string]func(*UserConfig) *string{
	"name":    func(c *UserConfig) *string { return &c.Name },
	"title":   func(c *UserConfig) *string { return &c.Title },
	"body":    func(c *UserConfig) *string { return &c.Body },
	"closing": func(c *UserConfig) *string { return &c.Closing },
	"prompt":  func(c *UserConfig) *string { return &c.Prompt },
	"phrase":  func(c *UserConfig) *string { return &c.Phrase },
}

// ConfigFields lists the settable field names in stable order.
func ConfigFields() []string {
	names := make([]string, 0, len(configFields))
	for name := range configFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set assigns a field by name.
func (c *UserConfig) Set(field, value string) error {
	f, ok := configFields[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		return fmt.Errorf("record: unknown config field %q (want one of %s)", field, strings.Join(ConfigFields(), ", "))
	}
	*f(c) = value
	return nil
}

// Get reads a field by name.
func (c UserConfig) Get(field string) (string, bool) {
	f, ok := configFields[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		return "", false
	}
	return *f(&c), true
}
