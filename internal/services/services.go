package services

import "translator-backend/internal/translator"

// Services holds all application services
type Services struct {
	TranslatorService *translator.TranslatorService
}

// NewServices creates and initializes all services
func NewServices(translatorService *translator.TranslatorService) *Services {
	return &Services{
		TranslatorService: translatorService,
	}
}
