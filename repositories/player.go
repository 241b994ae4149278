package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"roomcast/domain"
	"roomcast/errors"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const playerPrefix = "player:"

type IPlayerRepository interface {
	GetPlayer(ctx context.Context, playerID domain.PlayerID) (domain.PlayerRecord, error)
	SavePlayer(ctx context.Context, player domain.PlayerRecord) error
	SetAdmin(ctx context.Context, playerID domain.PlayerID, isAdmin bool) error
	SetCurrentRoom(ctx context.Context, playerID domain.PlayerID, roomID domain.RoomID) error
}

// PlayerRepository stores durable player records in BadgerDB.
// It is the fact source behind presence fallbacks and the admin flag.
type PlayerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPlayerRepository(db *badger.DB, log *slog.Logger) *PlayerRepository {
	return &PlayerRepository{db: db, log: log}
}

// GetPlayer returns errors.ErrNotFound when no record exists.
func (p *PlayerRepository) GetPlayer(ctx context.Context, playerID domain.PlayerID) (domain.PlayerRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.PlayerRecord{}, err
	}
	var record domain.PlayerRecord
	err := p.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = getPlayer(txn, playerID)
		return err
	})
	return record, err
}

func (p *PlayerRepository) SavePlayer(ctx context.Context, player domain.PlayerRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Update(func(txn *badger.Txn) error {
		return setPlayer(txn, player)
	})
}

// SetAdmin flips the admin flag, creating the record if needed.
func (p *PlayerRepository) SetAdmin(ctx context.Context, playerID domain.PlayerID, isAdmin bool) error {
	return p.update(ctx, playerID, func(record *domain.PlayerRecord) {
		record.IsAdmin = isAdmin
	})
}

// SetCurrentRoom records where the player stands, creating the record if needed.
func (p *PlayerRepository) SetCurrentRoom(ctx context.Context, playerID domain.PlayerID, roomID domain.RoomID) error {
	return p.update(ctx, playerID, func(record *domain.PlayerRecord) {
		record.CurrentRoomID = roomID
	})
}

func (p *PlayerRepository) update(ctx context.Context, playerID domain.PlayerID, fn func(*domain.PlayerRecord)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Update(func(txn *badger.Txn) error {
		record, err := getPlayer(txn, playerID)
		if stderrors.Is(err, errors.ErrNotFound) {
			record = domain.PlayerRecord{ID: playerID}
		} else if err != nil {
			return err
		}
		fn(&record)
		return setPlayer(txn, record)
	})
}

func getPlayer(txn *badger.Txn, playerID domain.PlayerID) (domain.PlayerRecord, error) {
	item, err := txn.Get(playerKey(playerID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.PlayerRecord{}, fmt.Errorf("player %s: %w", playerID, errors.ErrNotFound)
	}
	if err != nil {
		return domain.PlayerRecord{}, err
	}
	var pbPlayer structpb.Struct
	if err = item.Value(func(val []byte) error {
		return proto.Unmarshal(val, &pbPlayer)
	}); err != nil {
		return domain.PlayerRecord{}, fmt.Errorf("unmarshal player %s: %w", playerID, err)
	}
	return toPlayerRecord(playerID, &pbPlayer), nil
}

func setPlayer(txn *badger.Txn, player domain.PlayerRecord) error {
	pbPlayer, err := fromPlayerRecord(player)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(pbPlayer)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(playerKey(player.ID), data)
}

func playerKey(playerID domain.PlayerID) []byte {
	return []byte(playerPrefix + string(playerID))
}

func fromPlayerRecord(player domain.PlayerRecord) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":              string(player.ID),
		"name":            player.Name,
		"current_room_id": string(player.CurrentRoomID),
		"is_admin":        player.IsAdmin,
	})
}

func toPlayerRecord(playerID domain.PlayerID, pbPlayer *structpb.Struct) domain.PlayerRecord {
	fields := pbPlayer.GetFields()
	return domain.PlayerRecord{
		ID:            playerID,
		Name:          fields["name"].GetStringValue(),
		CurrentRoomID: domain.RoomID(fields["current_room_id"].GetStringValue()),
		IsAdmin:       fields["is_admin"].GetBoolValue(),
	}
}
