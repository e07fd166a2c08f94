package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetChallenges(c *fiber.Ctx) error {
	challenges, err := handler.challengeService.ListChallenges()
	if err != nil {
		return serviceError(c, err)
	}

	overview, err := handler.challengeService.Overview()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"challenges":   challengesPayload(challenges),
		"points":       overview.Points,
		"active_count": overview.ActiveCount,
	})
}

func (handler *Handler) JoinChallenge(c *fiber.Ctx) error {
	challengeID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid challenge id")
	}

	challenge, err := handler.challengeService.Join(challengeID)
	if err != nil {
		return serviceError(c, err)
	}

	handler.toaster.Show(toastChallengeJoined)
	return c.JSON(challengePayload(challenge))
}

func (handler *Handler) LeaveChallenge(c *fiber.Ctx) error {
	challengeID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid challenge id")
	}

	challenge, err := handler.challengeService.Leave(challengeID)
	if err != nil {
		return serviceError(c, err)
	}

	handler.toaster.Show(toastChallengeLeft)
	return c.JSON(challengePayload(challenge))
}

func (handler *Handler) AddChallengeProgress(c *fiber.Ctx) error {
	challengeID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid challenge id")
	}

	var input progressInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	challenge, err := handler.challengeService.AddProgress(challengeID, input.Delta)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(challengePayload(challenge))
}

func (handler *Handler) GetBadges(c *fiber.Ctx) error {
	badges, err := handler.challengeService.Badges()
	if err != nil {
		return serviceError(c, err)
	}

	payloads := make([]fiber.Map, 0, len(badges))
	for _, badge := range badges {
		payloads = append(payloads, badgePayload(badge))
	}
	return c.JSON(fiber.Map{"badges": payloads})
}

func (handler *Handler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := handler.challengeService.Leaderboard()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"leaderboard": leaderboardPayload(entries)})
}
