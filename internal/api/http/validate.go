package httpapi

import (
	"regexp"
	"strings"

	"qualigo/internal/domain"
)

type paymentInfo struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type checkoutRequest struct {
	CustomerInfo domain.CustomerInfo `json:"customer_info"`
	Payment      paymentInfo         `json:"payment"`
}

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// Field errors are keyed per field so one bad field never blocks correcting
// another.

func validateCheckout(req checkoutRequest) map[string]string {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(req.CustomerInfo.Name) == "" {
		fieldErrors["name"] = "El nombre es requerido"
	}
	if strings.TrimSpace(req.CustomerInfo.Email) == "" {
		fieldErrors["email"] = "El correo es requerido"
	} else if !emailPattern.MatchString(req.CustomerInfo.Email) {
		fieldErrors["email"] = "Correo inválido"
	}
	if strings.TrimSpace(req.CustomerInfo.Phone) == "" {
		fieldErrors["phone"] = "El teléfono es requerido"
	}
	if strings.TrimSpace(req.CustomerInfo.Address) == "" {
		fieldErrors["address"] = "La dirección es requerida"
	}

	card := strings.ReplaceAll(req.Payment.CardNumber, " ", "")
	if card == "" {
		fieldErrors["card_number"] = "El número de tarjeta es requerido"
	} else if !digitsPattern.MatchString(card) || len(card) < 13 || len(card) > 19 {
		fieldErrors["card_number"] = "Número de tarjeta inválido"
	}
	if !expiryPattern.MatchString(req.Payment.Expiry) {
		fieldErrors["expiry"] = "Fecha de expiración inválida (MM/YY)"
	}
	if !cvvPattern.MatchString(req.Payment.CVV) {
		fieldErrors["cvv"] = "CVV inválido"
	}

	return fieldErrors
}

func validateRegistration(user domain.User) map[string]string {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(user.Name) == "" {
		fieldErrors["name"] = "El nombre es requerido"
	}
	if strings.TrimSpace(user.Email) == "" {
		fieldErrors["email"] = "El correo es requerido"
	} else if !emailPattern.MatchString(user.Email) {
		fieldErrors["email"] = "Correo inválido"
	}
	if user.Password == "" {
		fieldErrors["password"] = "La contraseña es requerida"
	}

	return fieldErrors
}
