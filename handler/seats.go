package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"movie_booking/config"
	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.Config("REDIS_ADDR", "localhost:6379"),
	})

	seatRooms = make(map[uint]*seatRoom)
	seatMutex sync.Mutex
)

// seatRoom holds every websocket client watching one showtime plus the single
// Redis subscription feeding them. One subscriber per room keeps each client
// at exactly one copy of every update.
type seatRoom struct {
	conns  map[*websocket.Conn]bool
	pubsub *redis.PubSub
}

type seatUpdate struct {
	ShowtimeId uint                 `json:"showtimeId"`
	Seats      []model.ShowtimeSeat `json:"seats"`
}

func seatChannel(showtimeId uint) string {
	return fmt.Sprintf("showtime:%d", showtimeId)
}

// PublishSeatMap pushes the showtime's current seat map to the Redis channel
// so every server instance can fan it out to its websocket clients.
func PublishSeatMap(showtimeId uint) {
	db := database.DB

	var seats []model.ShowtimeSeat
	if err := db.
		Where("showtime_id = ?", showtimeId).
		Order("row ASC, number ASC").
		Find(&seats).Error; err != nil {
		log.Printf("failed to load seats for broadcast: %v", err)
		return
	}

	payload, err := json.Marshal(seatUpdate{ShowtimeId: showtimeId, Seats: seats})
	if err != nil {
		return
	}

	if err := redisClient.Publish(context.Background(), seatChannel(showtimeId), payload).Err(); err != nil {
		log.Printf("failed to publish seat map for showtime %d: %v", showtimeId, err)
	}
}

// joinSeatRoom registers the connection and, for the first client of a
// showtime, starts the room's subscriber goroutine.
func joinSeatRoom(showtimeId uint, c *websocket.Conn) {
	seatMutex.Lock()
	defer seatMutex.Unlock()

	room := seatRooms[showtimeId]
	if room == nil {
		room = &seatRoom{
			conns:  make(map[*websocket.Conn]bool),
			pubsub: redisClient.Subscribe(context.Background(), seatChannel(showtimeId)),
		}
		seatRooms[showtimeId] = room
		go room.fanOut()
	}
	room.conns[c] = true
}

// leaveSeatRoom drops the connection; the last one out closes the
// subscription, which ends the fan-out goroutine.
func leaveSeatRoom(showtimeId uint, c *websocket.Conn) {
	seatMutex.Lock()
	defer seatMutex.Unlock()

	room := seatRooms[showtimeId]
	if room == nil {
		return
	}
	delete(room.conns, c)
	if len(room.conns) == 0 {
		room.pubsub.Close()
		delete(seatRooms, showtimeId)
	}
}

func (room *seatRoom) fanOut() {
	for msg := range room.pubsub.Channel() {
		payload := []byte(msg.Payload)

		seatMutex.Lock()
		for conn := range room.conns {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(room.conns, conn)
			}
		}
		seatMutex.Unlock()
	}
}

// SeatWebsocket streams seat map updates for one showtime. The client gets
// the current state on connect, then every change published via Redis.
func SeatWebsocket(c *websocket.Conn) {
	idStr := c.Params("id")
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.Close()
		return
	}
	showtimeId := uint(id64)

	joinSeatRoom(showtimeId, c)
	defer func() {
		leaveSeatRoom(showtimeId, c)
		c.Close()
	}()

	var seats []model.ShowtimeSeat
	database.DB.
		Where("showtime_id = ?", showtimeId).
		Order("row ASC, number ASC").
		Find(&seats)
	c.WriteJSON(seatUpdate{ShowtimeId: showtimeId, Seats: seats})

	// Updates arrive through the room's fan-out goroutine; this loop only
	// detects the client going away.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// HoldSeats places a short-lived hold on the requested seats so the caller
// can finish checkout.
func HoldSeats(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	input, ok := c.Locals("inputHoldSeats").(model.HoldSeatsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}
	heldBy := fmt.Sprintf("USER_%d", user.ID)

	tx := db.Begin()

	var showtime model.Showtime
	if err := tx.Where("public_code = ?", code).First(&showtime).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}
	if showtime.StartTime.Before(time.Now()) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime already started", errors.New("showtime in the past"))
	}

	_, expiresAt, err := helper.HoldSeats(tx, showtime.ID, input.Seats, heldBy)
	if err != nil {
		tx.Rollback()
		var conflict *helper.SeatConflictError
		if errors.As(err, &conflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, err.Error(), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hold seats", err)
	}
	tx.Commit()

	PublishSeatMap(showtime.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"heldSeats": input.Seats,
		"expiresAt": expiresAt,
	})
}

// ReleaseHeldSeats drops the caller's own holds.
func ReleaseHeldSeats(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	input, ok := c.Locals("inputHoldSeats").(model.HoldSeatsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}
	heldBy := fmt.Sprintf("USER_%d", user.ID)

	var showtime model.Showtime
	if err := db.Where("public_code = ?", code).First(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}

	tx := db.Begin()
	if err := helper.ReleaseHeldSeats(tx, showtime.ID, input.Seats, heldBy); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}
	tx.Commit()

	PublishSeatMap(showtime.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, "Released")
}

// StartExpireSeatWorker sweeps timed-out holds back to available.
func StartExpireSeatWorker() {
	ticker := time.NewTicker(30 * time.Second)
	go func() {
		for range ticker.C {
			for _, showtimeId := range helper.ExpireHeldSeats(database.DB) {
				PublishSeatMap(showtimeId)
			}
		}
	}()
}
