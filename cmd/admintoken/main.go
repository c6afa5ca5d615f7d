// admintoken genera un token JWT para la superficie administrativa de la API
// (reset y limpieza del catálogo de prueba).
//
// Uso: go run ./cmd/admintoken [subject]
// El secret y el issuer se leen de JWT_SECRET y JWT_ISSUER; la expiración de
// JWT_EXPIRATION_MINUTES (por defecto la misma que usa la API).
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

func main() {
	subject := "operador"
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está configurado")
		os.Exit(1)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, subject, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
