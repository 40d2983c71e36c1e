// Package validation contiene las reglas de dominio que deciden si una entidad
// está bien formada, si una actualización cambia algo y cómo se fusiona un
// cambio sobre el agregado almacenado.
//
// Todas las funciones son puras. Las validaciones cortan en la primera regla
// incumplida y devuelven un *domain.Error de tipo BUSINESS_RULE; el orden de las
// reglas es parte del contrato porque el mensaje llega al usuario.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/destinity-erp/internal/domain"
)

// safeText: letras, dígitos, espacios y la puntuación permitida.
var safeText = regexp.MustCompile(`^[\p{L}\p{N}\s.,;:!¡¿?()\-_'@+%#=/]*$`)

// RequireText exige un texto no vacío y compuesto solo por caracteres seguros.
// label es el nombre del campo tal como aparece en el mensaje.
func RequireText(value, label string) error {
	return requireText(label, value, label)
}

func requireText(field, value, label string) error {
	if strings.TrimSpace(value) == "" {
		return domain.BusinessField(field, fmt.Sprintf("El campo %s no puede estar vacio", label))
	}
	if !safeText.MatchString(value) {
		return domain.BusinessField(field, fmt.Sprintf("El campo %s contiene carácteres no válidos", label))
	}
	return nil
}
