package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetCareTeam(c *fiber.Ctx) error {
	members, err := handler.careTeamService.Search(c.Query("q"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"members": careTeamPayload(members)})
}

func (handler *Handler) MarkCareTeamMessagesRead(c *fiber.Ctx) error {
	memberID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid member id")
	}

	member, err := handler.careTeamService.MarkMessagesRead(memberID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(careTeamMemberPayload(member))
}
