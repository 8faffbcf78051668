package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/models"
	"shikhi_backend/utils"
	"shikhi_backend/validators"
)

type MessagesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewMessagesController(db *gorm.DB, cfg *config.Config) *MessagesController {
	return &MessagesController{DB: db, Cfg: cfg}
}

// GetConversation returns the two-way message history with another user in
// chronological order. Reads are idempotent; clients poll this endpoint.
// Deleted messages come back with an empty body so both sides render the
// same "message removed" placeholder.
func (mc *MessagesController) GetConversation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	withID, err := strconv.Atoi(c.Query("with"))
	if err != nil || withID <= 0 {
		return utils.BadRequest(c, "Query parameter 'with' is required")
	}

	var messages []models.Message
	if err := mc.DB.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, withID, withID, userID,
	).Order("created_at asc").Find(&messages).Error; err != nil {
		return utils.MapError(c, err)
	}

	result := make([]fiber.Map, 0, len(messages))
	for _, m := range messages {
		body := m.Body
		attachmentURL := m.AttachmentURL
		attachmentName := m.AttachmentName
		if m.IsDeleted {
			body = ""
			attachmentURL = ""
			attachmentName = ""
		}
		result = append(result, fiber.Map{
			"id":              m.ID,
			"sender_id":       m.SenderID,
			"recipient_id":    m.RecipientID,
			"body":            body,
			"attachment_url":  attachmentURL,
			"attachment_name": attachmentName,
			"is_read":         m.IsRead,
			"read_at":         m.ReadAt,
			"is_deleted":      m.IsDeleted,
			"created_at":      m.CreatedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

func (mc *MessagesController) Send(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	input := c.Locals("validatedMessage").(*validators.MessageInput)

	var recipient models.User
	if err := mc.DB.First(&recipient, input.RecipientID).Error; err != nil {
		return utils.MapError(c, err)
	}

	message := models.Message{
		SenderID:       userID,
		RecipientID:    input.RecipientID,
		Body:           input.Body,
		AttachmentURL:  input.AttachmentURL,
		AttachmentName: input.AttachmentName,
		AttachmentType: input.AttachmentType,
	}

	if err := mc.DB.Create(&message).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, message)
}

// MarkRead marks every unread message from the given sender as read.
// Best-effort semantics: a failure is reported but carries no other state.
func (mc *MessagesController) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		FromUserID uint `json:"from_user_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.FromUserID == 0 {
		return utils.ValidationError(c, map[string]string{"from_user_id": "Sender is required"})
	}

	now := time.Now()
	if err := mc.DB.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", input.FromUserID, userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Conversation marked read"})
}

// Delete applies "delete for everyone": the row is kept, the body hidden for
// both parties. Only the sender may delete.
func (mc *MessagesController) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	messageID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	var message models.Message
	if err := mc.DB.First(&message, messageID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if message.SenderID != userID {
		return utils.Forbidden(c, "Only the sender can delete a message")
	}

	message.IsDeleted = true
	if err := mc.DB.Save(&message).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Message deleted"})
}
