package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/contact/dto"
	"thaipk_backend/internals/features/contact/service"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/line"
)

var validateContact = validator.New()

type ContactController struct {
	Notifier *service.ContactNotifier
}

func NewContactController(db *gorm.DB, lineClient *line.Client) *ContactController {
	return &ContactController{Notifier: service.NewContactNotifier(db, lineClient)}
}

// ➕ POST: public - relay a contact form submission. Delivery is best-effort:
// the visitor gets 200 as long as the payload parses, even when some (or all)
// pushes fail; failures only land in the server log.
func (ctrl *ContactController) SubmitContact(c *fiber.Ctx) error {
	var body dto.ContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	delivered := ctrl.Notifier.Notify(c.UserContext(), body)
	log.Printf("[INFO] contact from %q relayed to %d recipient(s)", body.Name, delivered)

	return helper.JsonOK(c, "Contact received", fiber.Map{
		"delivered": delivered,
	})
}
