package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jwebster45206/npc-engine/internal/config"
	"github.com/jwebster45206/npc-engine/internal/logger"
	"github.com/jwebster45206/npc-engine/pkg/actor"
	"github.com/jwebster45206/npc-engine/pkg/behavior"
	"github.com/jwebster45206/npc-engine/pkg/characters"
	"github.com/jwebster45206/npc-engine/pkg/gamestate"
	"github.com/jwebster45206/npc-engine/pkg/prompts"
)

// session wires one conversation from configuration.
type session struct {
	cfg       *config.Config
	log       *slog.Logger
	bridge    gamestate.Bridge
	behaviors *behavior.Registry
	manager   *characters.Manager
	closeFn   func() error
}

func newSession(ctx context.Context, cfg *config.Config, tpl prompts.Templates) (*session, error) {
	log := logger.WithConversationID(logger.Setup(cfg), uuid.NewString())

	s := &session{cfg: cfg, log: log, closeFn: func() error { return nil }}

	switch cfg.Bridge {
	case config.BridgeRedis:
		rb, err := gamestate.NewRedisBridge(cfg.RedisURL, cfg.RedisHash, log)
		if err != nil {
			return nil, err
		}
		if err := rb.Ping(ctx); err != nil {
			// Reads degrade to empty values and writes are logged, so keep going.
			log.Warn("Game state bridge unavailable", "bridge", cfg.Bridge, "error", err)
		}
		s.bridge = rb
		s.closeFn = rb.Close
	default:
		s.bridge = gamestate.NewFileBridge(cfg.GameStateDir, log)
	}

	reg, err := behavior.NewRegistry(
		behavior.NewOffended(cfg.OffendedKeyword, s.bridge, log),
		behavior.NewForgiven(cfg.ForgivenKeyword, s.bridge, log),
		behavior.NewFollow(cfg.FollowKeyword, s.bridge, log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register behaviors: %w", err)
	}
	s.behaviors = reg

	s.manager = characters.NewManager(characters.Options{
		Bridge:    s.bridge,
		Behaviors: reg,
		Templates: tpl,
		Language:  cfg.Language,
		Logger:    log,
	})

	log.Debug("Session ready", "bridge", cfg.Bridge, "language", cfg.Language, "behaviors", reg.Len())
	return s, nil
}

// addNPCs loads each NPC file and adds it to the conversation.
func (s *session) addNPCs(paths []string) error {
	for _, p := range paths {
		npc, err := actor.LoadNPC(p)
		if err != nil {
			return err
		}
		s.manager.Add(npc.Key(), npc)
		s.log.Info("NPC joined conversation", "name", npc.Name(), "file", p)
	}
	return nil
}

func (s *session) Close() error {
	return s.closeFn()
}
