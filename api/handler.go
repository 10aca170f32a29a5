package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

var errInvalidBody = errors.New("invalid request format")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	simulator *schedulers.Simulator
	logger    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, simulator *schedulers.Simulator, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		simulator: simulator,
		logger:    logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	_, registry, err := s.parseRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.simulator.ScheduleFirstComeFirstServe(registry)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(s.newResponse(result))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, registry, err := s.parseRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.simulator.ScheduleRoundRobin(registry, s.timeQuantum(request))
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(s.newResponse(result))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, registry, err := s.parseRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	results, err := s.simulator.ScheduleAll(registry, s.timeQuantum(request))
	if err != nil {
		return s.respondError(ctx, err)
	}
	out := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		out = append(out, s.newResponse(result))
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":               "ok",
		"default_time_quantum": s.config.RoundRobinTimeQuantum,
		"supported_algorithms": []schedulers.Algorithm{schedulers.FirstComeFirstServe, schedulers.RoundRobin},
	})
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, *core.Registry, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	registry, err := workload.FromJobs(request.Processes)
	if err != nil {
		return nil, nil, err
	}
	return request, registry, nil
}

func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != nil {
		return *request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) newResponse(result schedulers.Result) responses.ScheduleResponse {
	response := schedulers.GenerateResponse(result)
	response.RunID = "run_" + uuid.New().String()
	return response
}

func (s *SchedulerHandlerImpl) respondError(ctx *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL_ERROR"
	message := "can not process request"
	switch {
	case errors.Is(err, errInvalidBody):
		status, code, message = fiber.StatusBadRequest, "VALIDATION_ERROR", errInvalidBody.Error()
		s.logger.Debug("invalid request body", "error", err, "request_id", requestIDFrom(ctx))
	case errors.Is(err, core.ErrInvalidInput):
		status, code, message = fiber.StatusBadRequest, "INVALID_INPUT", err.Error()
	case errors.Is(err, core.ErrInvalidConfiguration):
		status, code, message = fiber.StatusBadRequest, "INVALID_CONFIGURATION", err.Error()
	default:
		s.logger.Error("schedule failed", "error", err, "request_id", requestIDFrom(ctx))
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: requestIDFrom(ctx),
	})
}
