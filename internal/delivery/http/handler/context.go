package handler

import (
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/modelrouter"

	"github.com/gofiber/fiber/v3"
)

// planTierFromCtx reads the plan tier the auth middleware stored from the
// token claims. Missing or unknown tiers degrade to free inside the router.
func planTierFromCtx(c fiber.Ctx) modelrouter.PlanTier {
	tier, _ := c.Locals(middleware.CtxPlanTierKey).(string)
	return modelrouter.PlanTier(tier)
}
