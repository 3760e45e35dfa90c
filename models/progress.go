package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type (
	// ID is a Crowdin resource identifier. Crowdin sends numeric ids for
	// projects and branches and string ids for languages, both are kept as
	// strings here.
	ID string

	Branch struct {
		ID        ID     `json:"id"`
		ProjectID ID     `json:"projectId"`
		Name      string `json:"name"`
		Title     string `json:"title"`
	}

	LanguageProgress struct {
		LanguageID          string `json:"languageId"`
		TranslationProgress int    `json:"translationProgress"`
		ApprovalProgress    int    `json:"approvalProgress"`
	}

	Language struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		EditorCode  string `json:"editorCode"`
		TwoLetters  string `json:"twoLettersCode"`
		ThreeLetter string `json:"threeLettersCode"`
		Locale      string `json:"locale"`
	}

	// ProgressEntry is a language progress record with its resolved display name.
	ProgressEntry struct {
		LanguageProgress
		Name string
	}
)

const (
	MinProgress = 0
	MaxProgress = 100
)

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both `123` and `"123"`.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %s is neither a string nor a number", data)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("id: %s is not an integer", n)
	}
	*id = ID(n.String())
	return nil
}

// Validate reports progress values outside of the percentage range.
func (p LanguageProgress) Validate() error {
	if p.LanguageID == "" {
		return fmt.Errorf("language progress: missing languageId")
	}
	if p.TranslationProgress < MinProgress || p.TranslationProgress > MaxProgress {
		return fmt.Errorf("language progress %s: translationProgress %d out of range", p.LanguageID, p.TranslationProgress)
	}
	if p.ApprovalProgress < MinProgress || p.ApprovalProgress > MaxProgress {
		return fmt.Errorf("language progress %s: approvalProgress %d out of range", p.LanguageID, p.ApprovalProgress)
	}
	return nil
}
