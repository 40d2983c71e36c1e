package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

// Option ajusta dependencias secundarias de los casos de uso.
type Option func(*options)

type options struct {
	now func() time.Time
	log *logger.Logger
}

// WithClock reemplaza el reloj (pruebas).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(component string, opts []Option) options {
	o := options{now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.Named(component)
	return o
}

func normalizePage(page, size int) (int, int) {
	p := dto.PageRequest{Page: page, Size: size}.Normalize()
	return p.Page, p.Size
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
