package service

import "strings"

// Deterministic keyword-matched responses, the guaranteed local path when
// the external chatbot call is unavailable.

const (
	fallbackGreeting = "¡Hola! Bienvenido a QaliGo - tu restaurante de comida rápida saludable. " +
		"¿En qué puedo ayudarte hoy? Puedo recomendarte platos, responder sobre ingredientes, " +
		"restricciones alimentarias, o ayudarte con tu pedido."
	fallbackHealthy = "Nuestros platos con más proteína y menos calorías son: Buddha Bowl Glow " +
		"(520 cal, 32g proteína) y Ensalada Kale Suprema (380 cal, 25g proteína). ¿Te interesa alguno?"
	fallbackVegan = "Para opciones veganas, te recomendamos: Wrap Saludable Verde sin pollo, " +
		"Buddha Bowl con tofu, o Ensalada Kale. ¿Cuál prefieres?"
	fallbackQuick = "Si buscas algo rápido, nuestros smoothies (7.99$) están listos en minutos. " +
		"O puedes probar nuestros wraps (10.99$)."
	fallbackNutrition = "Cuéntame qué plato te interesa y te doy los detalles nutricionales."
	fallbackProcess   = "Para completar tu compra: 1) Agrega platos al carrito, 2) Personaliza si quieres, " +
		"3) Revisa el carrito, 4) Completa checkout con tus datos, 5) Confirma el pago. ¿Necesitas ayuda con algo?"
	fallbackDefault = "Entiendo. ¿Hay algo más que pueda ayudarte? Puedo recomendarte platos, " +
		"explicar ingredientes, o aclarar tu pedido."
)

var nutritionFacts = map[string]string{
	"buddha bowl": "Buddha Bowl Glow: 520 calorías, 32g de proteína, rica en fibra y antioxidantes.",
	"kale":        "Ensalada Kale Suprema: 380 calorías, 25g de proteína, excelente fuente de vitaminas K.",
	"smoothie":    "Smoothie Energético: 280 calorías, 20g de proteína, perfecto para post-entreno.",
}

func FallbackResponse(userMessage string) string {
	message := strings.ToLower(userMessage)

	switch {
	case strings.Contains(message, "hola") || strings.Contains(message, "buenos"):
		return fallbackGreeting
	case strings.Contains(message, "saludable") || strings.Contains(message, "dieta"):
		return fallbackHealthy
	case strings.Contains(message, "vegano") || strings.Contains(message, "vegetariano"):
		return fallbackVegan
	case strings.Contains(message, "rápido") || strings.Contains(message, "rapido"):
		return fallbackQuick
	case strings.Contains(message, "calorías") || strings.Contains(message, "proteína") ||
		strings.Contains(message, "nutricion") || strings.Contains(message, "información"):
		for name, facts := range nutritionFacts {
			if strings.Contains(message, name) {
				return facts
			}
		}
		return fallbackNutrition
	case strings.Contains(message, "como") && (strings.Contains(message, "comprar") || strings.Contains(message, "pedir")):
		return fallbackProcess
	}
	return fallbackDefault
}
