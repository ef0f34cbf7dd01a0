package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerMiddleware devuelve el middleware de documentación apuntando al
// spec estático en filePath, o nil si el archivo no existe: el binario debe
// arrancar aunque el despliegue no incluya la documentación (swagger.New
// entra en pánico con un FilePath inexistente).
func SwaggerMiddleware(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "ServiCampo API",
	})
}
