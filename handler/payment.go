package handler

import (
	"errors"
	"fmt"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/notifier"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetPaymentMethods(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.PaymentMethods())
}

// RefundPayment reverses a completed payment. Admin only; the booking keeps
// its cancelled state, only the money moves.
func RefundPayment(c *fiber.Ctx) error {
	db := database.DB
	paymentId := c.Locals("inputId").(int)

	tx := db.Begin()

	var payment model.Payment
	if err := tx.Preload("Booking").Preload("Booking.User").
		First(&payment, paymentId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", err)
	}

	if err := helper.CanRefund(payment.Status); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only completed payments can be refunded", err)
	}
	if payment.BookingId == nil || payment.Booking == nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Payment is not attached to a booking", errors.New("no booking"))
	}

	now := time.Now()
	payment.Status = constants.PAYMENT_REFUNDED
	payment.RefundedAt = &now
	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Model(&model.Booking{}).
		Where("id = ?", *payment.BookingId).
		Update("payment_status", constants.PAYMENT_REFUNDED).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx.Commit()

	txnId := ""
	if payment.TransactionId != nil {
		txnId = *payment.TransactionId
	}
	notifier.Default.Publish(notifier.Event{
		Type:        notifier.EventPaymentRefunded,
		BookingCode: payment.Booking.PublicCode,
		UserId:      payment.Booking.UserId,
		UserEmail:   payment.Booking.User.Email,
		UserPhone:   payment.Booking.User.Phone,
		Title:       "Payment refunded",
		Message:     fmt.Sprintf("Payment %s refunded: %.2f EGP", txnId, payment.Amount),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

// GetPayments is the admin audit listing, failed attempts included.
func GetPayments(c *fiber.Ctx) error {
	db := database.DB

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.Payment{})
	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}
	if method := c.Query("method"); method != "" {
		condition = condition.Where("method = ?", method)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var payments []model.Payment
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Order("id DESC").Find(&payments)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       payments,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}
