package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/pkg/clock"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSlotFull is returned when a bookable time point has no remaining capacity
var ErrSlotFull = errors.New("time slot is fully booked")

// reserveSlotScript atomically claims one unit of capacity at a time point and
// draws the next token number. Either both happen or neither does.
//
// KEYS[1] = booked-count key, KEYS[2] = token-counter key
// ARGV[1] = capacity, ARGV[2] = key TTL seconds
var reserveSlotScript = redis.NewScript(`
	local booked = redis.call('INCR', KEYS[1])
	if booked > tonumber(ARGV[1]) then
		redis.call('DECR', KEYS[1])
		return -1
	end
	local token = redis.call('INCR', KEYS[2])
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	redis.call('EXPIRE', KEYS[2], ARGV[2])
	return token
`)

const (
	// Redis key prefixes for the reservation mirror
	RedisBookedKeyPrefix = "slot:booked:"
	RedisTokenKeyPrefix  = "token:counter:"

	// Keys live two days past their date so late lookups still hit
	reservationKeyTTL = 48 * time.Hour

	// Batch size for the startup re-sync
	syncBatchSize = 500
)

// ReservationService mirrors appointment counts and token sequences into Redis
// so token creation can reserve capacity atomically without DB row locks.
// PostgreSQL stays the source of truth; SyncOnStartup rebuilds the mirror from
// it after a restart or Redis flush.
type ReservationService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewReservationService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *ReservationService {
	return &ReservationService{
		db:          db,
		redisClient: redisClient,
		log:         log,
	}
}

func bookedKey(doctorID, date, t string) string {
	return fmt.Sprintf("%s%s:%s:%s", RedisBookedKeyPrefix, doctorID, date, t)
}

func tokenKey(doctorID, date string) string {
	return fmt.Sprintf("%s%s:%s", RedisTokenKeyPrefix, doctorID, date)
}

// ReserveSlot atomically books one unit of capacity for (doctor, date, time)
// and returns the issued token number. Returns ErrSlotFull when the time point
// is at capacity.
func (s *ReservationService) ReserveSlot(ctx context.Context, doctorID, date, t string, capacity int) (int, error) {
	keys := []string{bookedKey(doctorID, date, t), tokenKey(doctorID, date)}
	ttl := int(reservationKeyTTL.Seconds())

	token, err := reserveSlotScript.Run(ctx, s.redisClient, keys, capacity, ttl).Int()
	if err != nil {
		return 0, fmt.Errorf("reserve slot %s %s %s: %w", doctorID, date, t, err)
	}
	if token < 0 {
		return 0, ErrSlotFull
	}
	return token, nil
}

// ReleaseSlot returns one unit of capacity at (doctor, date, time). Used both
// to compensate a failed DB insert and when an appointment is cancelled. The
// token counter is deliberately not decremented; token numbers are never
// reissued.
func (s *ReservationService) ReleaseSlot(ctx context.Context, doctorID, date, t string) error {
	key := bookedKey(doctorID, date, t)
	booked, err := s.redisClient.Decr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("release slot %s: %w", key, err)
	}
	if booked < 0 {
		// Underflow means the key expired or was never set; clamp back to zero.
		s.redisClient.Set(ctx, key, 0, reservationKeyTTL)
	}
	return nil
}

// syncRow is one (doctor, date) aggregate pulled from the appointments table.
type syncRow struct {
	DoctorID        string
	AppointmentDate time.Time
	AppointmentTime string
	Count           int
	MaxToken        int
}

// SyncOnStartup rebuilds the Redis mirror from PostgreSQL: booked counts per
// (doctor, date, time) and the token counter per (doctor, date), for today and
// future dates only. Call before accepting traffic.
func (s *ReservationService) SyncOnStartup(ctx context.Context, loc *time.Location) error {
	s.log.Info("Rebuilding reservation mirror from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := clock.FormatDate(clock.Today(loc))
	offset := 0
	totalSynced := 0

	for {
		var rows []syncRow

		err := s.db.WithContext(ctx).Model(&entity.Appointment{}).
			Select(`
				doctor_id,
				appointment_date,
				to_char(appointment_time, 'HH24:MI') as appointment_time,
				COUNT(CASE WHEN status != ? THEN 1 END) as count,
				COALESCE(MAX(token_number), 0) as max_token
			`, string(entity.AppointmentStatusCancelled)).
			Where("appointment_date >= ?", today).
			Group("doctor_id, appointment_date, to_char(appointment_time, 'HH24:MI')").
			Order("doctor_id, appointment_date, appointment_time").
			Limit(syncBatchSize).
			Offset(offset).
			Scan(&rows).Error
		if err != nil {
			return fmt.Errorf("query appointments at offset %d: %w", offset, err)
		}
		if len(rows) == 0 {
			break
		}

		// New pipeline per batch keeps memory bounded on large datasets.
		pipe := s.redisClient.TxPipeline()
		for _, row := range rows {
			date := clock.FormatDate(row.AppointmentDate)
			pipe.Set(ctx, bookedKey(row.DoctorID, date, row.AppointmentTime), row.Count, reservationKeyTTL)
			// The token counter must only ever move forward: several time
			// rows share one counter, so take the max seen so far.
			tk := tokenKey(row.DoctorID, date)
			pipe.Eval(ctx, `
				local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
				if tonumber(ARGV[1]) > cur then
					redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[2])
				end
				return 0
			`, []string{tk}, row.MaxToken, int(reservationKeyTTL.Seconds()))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(rows)
		if len(rows) < syncBatchSize {
			break
		}
		offset += syncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	s.log.Infof("Reservation mirror rebuilt: %d time points in %v", totalSynced, time.Since(startTime))
	return nil
}
