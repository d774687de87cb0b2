// Seeds a development database with a demo guest and a handful of
// rooms. Not intended for production environments.
package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-management-system/internal/domain/guest"
	"hotel-management-system/internal/domain/room"
	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/infra/repository"
	"hotel-management-system/internal/pkg/config"

	"github.com/google/uuid"
)

type roomSeed struct {
	number    string
	roomType  string
	rateCents int64
}

var roomSeeds = []roomSeed{
	{"101", "single", 90_00},
	{"102", "single", 90_00},
	{"201", "double", 140_00},
	{"202", "double", 140_00},
	{"301", "suite", 320_00},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()
	rooms := repository.NewRoomRepository(pool)
	guests := repository.NewGuestRepository(pool)

	for _, s := range roomSeeds {
		rm, err := room.NewRoom(s.number, s.roomType, s.rateCents)
		if err != nil {
			slog.Error("invalid room seed", "number", s.number, "error", err)
			os.Exit(1)
		}
		if err := rooms.Create(ctx, rm); err != nil {
			slog.Warn("skipping room, probably seeded already", "number", s.number, "error", err.Error())
			continue
		}
		slog.Info("seeded room", "number", s.number, "type", s.roomType)
	}

	g, err := guest.NewGuest(uuid.New(), "Demo Guest", "demo@example.com", "+1-555-0100")
	if err != nil {
		slog.Error("invalid guest seed", "error", err)
		os.Exit(1)
	}
	if err := guests.Create(ctx, g); err != nil {
		slog.Warn("skipping guest, probably seeded already", "error", err.Error())
		return
	}
	slog.Info("seeded guest", "guest_id", g.ID(), "principal_id", g.PrincipalID())
}
