package handler

import (
	"cinema_booking/config"
	"cinema_booking/database"
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	seatRooms  = make(map[uint]map[*websocket.Conn]bool)
	seatRoomMu sync.Mutex
)

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOrDefault("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// SeatWebsocket mỗi client xem sơ đồ ghế của MỘT suất chiếu: join room theo
// showtimeId, nhận full state ngay khi connect, sau đó nhận update qua Redis
func SeatWebsocket(c *websocket.Conn) {
	showtimeIdStr := c.Params("showtimeId")
	id64, err := strconv.ParseUint(showtimeIdStr, 10, 64)
	if err != nil {
		log.Printf("showtimeId không hợp lệ trên WS: %s", showtimeIdStr)
		c.Close()
		return
	}
	showtimeId := uint(id64)

	seatRoomMu.Lock()
	if seatRooms[showtimeId] == nil {
		seatRooms[showtimeId] = make(map[*websocket.Conn]bool)
	}
	seatRooms[showtimeId][c] = true
	seatRoomMu.Unlock()

	defer func() {
		seatRoomMu.Lock()
		delete(seatRooms[showtimeId], c)
		if len(seatRooms[showtimeId]) == 0 {
			delete(seatRooms, showtimeId)
		}
		seatRoomMu.Unlock()
		c.Close()
	}()

	// Full state lần đầu
	if seatMap, err := FetchShowtimeSeats(database.DB, showtimeId); err == nil {
		c.WriteJSON(seatMap)
	}

	// Update từ instance khác đi qua Redis
	pubsub := getRedisClient().Subscribe(
		context.Background(),
		fmt.Sprintf("showtime:%d", showtimeId),
	)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			break
		}
	}
}

func writeToLocalConns(showtimeId uint, payload []byte) {
	seatRoomMu.Lock()
	conns := make([]*websocket.Conn, 0, len(seatRooms[showtimeId]))
	for conn := range seatRooms[showtimeId] {
		conns = append(conns, conn)
	}
	seatRoomMu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
		}
	}
}

func publishSeatMap(channel string, payload []byte) {
	if err := getRedisClient().Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("Lỗi publish %s qua Redis: %v", channel, err)
	}
}
