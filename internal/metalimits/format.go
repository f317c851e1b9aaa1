package metalimits

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pt-BR printer so counts render with locale grouping ("3.000 contatos")
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formats a campaign duration estimate in pt-BR.
// seconds below a minute, minutes below an hour, hours above that.
func formatDuration(seconds float64) string {
	if seconds < 60 {
		n := int(math.Ceil(seconds))
		if n == 1 {
			return "1 segundo"
		}
		return ptBR.Sprintf("%d segundos", n)
	}

	if seconds < 3600 {
		n := int(math.Round(seconds / 60))
		if n == 1 {
			return "1 minuto"
		}
		return ptBR.Sprintf("%d minutos", n)
	}

	n := int(math.Round(seconds / 3600))
	if n <= 1 {
		return "1 hora"
	}

	return ptBR.Sprintf("%d horas", n)
}

func normalizeUpper(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
