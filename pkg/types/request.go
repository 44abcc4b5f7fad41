package types

// TranslateRequest is the body of POST /translate. Both fields are pointers so
// that an absent key fails binding while an empty string is still accepted.
type TranslateRequest struct {
	Text       *string `json:"text" binding:"required"`
	TargetLang *string `json:"target_lang" binding:"required"`
}

type TranslationResult struct {
	Translation string `json:"translation"`
}

type AudioTranslationResult struct {
	Transcript  string `json:"transcript"`
	Translation string `json:"translation"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
