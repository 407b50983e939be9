package handler

import "github.com/gofiber/fiber/v2"

// Envelope is the JSON response wrapper used by the API endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSONData responds with a successful envelope carrying data.
func JSONData(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// JSONMessage responds with a successful envelope carrying a message.
func JSONMessage(c *fiber.Ctx, message string) error {
	return c.JSON(Envelope{Success: true, Message: message})
}

// JSONCreated responds with 201 and a successful envelope carrying data.
func JSONCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// JSONError responds with the given status and an error envelope.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: message})
}
