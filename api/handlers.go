package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/CristiGvl/picoMemGraph/internal/config"
	"github.com/CristiGvl/picoMemGraph/internal/report"
	"github.com/CristiGvl/picoMemGraph/internal/units"
)

// System memory endpoint
func (s *Server) getMemory(c *fiber.Ctx) error {
	a, err := s.requestAssembler(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ReadTimeout)
	defer cancel()

	info, err := a.System(ctx)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(info)
}

// Per-program memory endpoint
func (s *Server) getProgram(c *fiber.Ctx) error {
	name := c.Params("program")

	a, err := s.requestAssembler(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ReadTimeout)
	defer cancel()

	info, err := a.Program(ctx, name)
	if errors.Is(err, report.ErrProgramNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": report.NotFoundMessage(name)})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(info)
}

// requestAssembler applies the optional length and human query parameters
func (s *Server) requestAssembler(c *fiber.Ctx) (*report.Assembler, error) {
	length := s.cfg.Length
	if v := c.Query("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, errors.New("invalid length")
		}
		length = n
	}

	human := s.cfg.HumanReadable
	if v := c.Query("human"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("invalid human flag")
		}
		human = b
	}

	if length == s.assembler.Length && human == s.assembler.Units.Human {
		return s.assembler, nil
	}
	return s.assembler.With(length, units.Formatter{Human: human, Decimals: s.cfg.Decimals}), nil
}
