package turncost

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"agentdock/core"
	"agentdock/db"
	"agentdock/models"
)

// Claude Haiku pricing per 1K tokens
const (
	InputCostPer1K  = 0.0008 // $0.80 per 1M tokens
	OutputCostPer1K = 0.004  // $4.00 per 1M tokens
)

type TurnCostService struct {
	turnCostRepo *db.PostgresTurnCostsRepository
}

func NewTurnCostService(repo *db.PostgresTurnCostsRepository) *TurnCostService {
	return &TurnCostService{turnCostRepo: repo}
}

// RecordTurnCost stores the token usage and estimated spend for one chat turn
func (s *TurnCostService) RecordTurnCost(
	ctx context.Context,
	turnID string,
	inputTokens, outputTokens int64,
) (*models.TurnCost, error) {
	log.Printf("📋 Starting to record cost for turn %s: input=%d, output=%d tokens", turnID, inputTokens, outputTokens)

	if turnID == "" {
		return nil, fmt.Errorf("turn ID cannot be empty")
	}
	if inputTokens < 0 || outputTokens < 0 {
		return nil, fmt.Errorf("token counts cannot be negative")
	}

	cost := &models.TurnCost{
		ID:               core.NewID("tc"),
		TurnID:           turnID,
		InputTokens:      inputTokens,
		OutputTokens:     outputTokens,
		EstimatedCostUSD: EstimateCost(inputTokens, outputTokens),
	}

	if err := s.turnCostRepo.CreateTurnCost(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to record turn cost: %w", err)
	}

	log.Printf("📋 Completed successfully - recorded cost for turn %s: $%s", turnID, cost.EstimatedCostUSD.String())
	return cost, nil
}

func (s *TurnCostService) GetTurnCost(
	ctx context.Context,
	turnID string,
) (mo.Option[*models.TurnCost], error) {
	log.Printf("📋 Starting to get cost for turn: %s", turnID)

	if turnID == "" {
		return mo.None[*models.TurnCost](), fmt.Errorf("turn ID cannot be empty")
	}

	cost, err := s.turnCostRepo.GetTurnCostByTurnID(ctx, turnID)
	if core.IsNotFoundError(err) {
		log.Printf("📋 Completed successfully - no cost record found for turn: %s", turnID)
		return mo.None[*models.TurnCost](), nil
	}
	if err != nil {
		return mo.None[*models.TurnCost](), fmt.Errorf("failed to get turn cost: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved cost record for turn %s: $%s", turnID, cost.EstimatedCostUSD.String())
	return mo.Some(cost), nil
}

// EstimateCost computes the dollar estimate for the given token counts
func EstimateCost(inputTokens, outputTokens int64) decimal.Decimal {
	inputCost := decimal.NewFromInt(inputTokens).
		Div(decimal.NewFromInt(1000)).
		Mul(decimal.NewFromFloat(InputCostPer1K))
	outputCost := decimal.NewFromInt(outputTokens).
		Div(decimal.NewFromInt(1000)).
		Mul(decimal.NewFromFloat(OutputCostPer1K))
	return inputCost.Add(outputCost)
}
