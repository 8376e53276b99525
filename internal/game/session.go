package game

import (
	"errors"
	"fmt"

	"termcraft/internal/config"
	"termcraft/internal/graphics"
	renderer "termcraft/internal/graphics/renderer"
	"termcraft/internal/input"
	"termcraft/internal/logging"
	"termcraft/internal/meshing"
	"termcraft/internal/physics"
	"termcraft/internal/player"
	"termcraft/internal/profiling"
	"termcraft/internal/store"
	"termcraft/internal/ui/menu"
	"termcraft/internal/world"
)

// Session owns the world, its mesh and the player, and advances them one
// frame at a time.
type Session struct {
	World   *world.Grid
	Palette world.Palette
	Player  *player.Player
	Mesh    *meshing.Mesh
	Pick    physics.RaycastResult

	Paused    bool
	PauseMenu *menu.PauseMenu

	builder   *meshing.Builder
	collision *physics.CollisionSystem
	controls  player.Controls
	voidDepth float64

	store store.Store
	slot  string
}

// NewSession builds the mesh for g and places the player at the stock spawn.
// A nil store disables saving.
func NewSession(cfg config.Config, g *world.Grid, st store.Store) *Session {
	palette := world.DefaultPalette
	limits := meshing.Limits{
		MaxVertices:  cfg.Mesh.MaxVertices,
		MaxTriangles: cfg.Mesh.MaxTriangles,
	}
	s := &Session{
		World:     g,
		Palette:   palette,
		Player:    player.New(player.DefaultSpawn(g.Size())),
		Mesh:      meshing.NewMesh(limits),
		PauseMenu: menu.NewPauseMenu(),
		builder:   meshing.NewBuilder(palette, limits),
		collision: physics.NewCollisionSystem(physics.Params{
			Gravity:          cfg.Physics.Gravity,
			TerminalVelocity: cfg.Physics.TerminalVelocity,
		}),
		controls: player.Controls{
			WalkSpeed:    cfg.Controls.WalkSpeed,
			LookSpeed:    cfg.Controls.LookSpeed,
			JumpVelocity: cfg.Physics.JumpVelocity,
		},
		voidDepth: cfg.Physics.VoidDepth,
		store:     st,
		slot:      cfg.Storage.Slot,
	}

	s.refreshMesh()
	s.updatePick()
	return s
}

// Update advances the session by dt ticks: menu or movement, collision,
// picking, editing, then the mesh rebuild if the grid changed.
func (s *Session) Update(dt float64, in input.Intents) menu.Action {
	if in.Pause {
		s.SetPaused(!s.Paused)
		return menu.ActionNone
	}

	if s.Paused {
		return s.updateMenu(in)
	}

	p := s.Player
	if in.Cycle != 0 {
		p.CycleBlock(in.Cycle, s.Palette.Max())
	}
	p.ApplyIntents(in, dt, s.controls)
	s.collision.Step(s.World, &p.Body, dt)

	if p.Feet() < s.voidDepth {
		logging.Info("Player fell out of the world at %.1f, respawning", p.Feet())
		p.Respawn()
	}

	s.updatePick()

	if cmd := player.CommandFor(in.Break, in.Place); cmd != player.EditNone {
		if player.Edit(s.World, s.Pick, cmd, p.Selected) {
			logging.Debug("Edit %d at solid=%v empty=%v", cmd, s.Pick.Solid, s.Pick.Empty)
		}
	}

	s.refreshMesh()
	return menu.ActionNone
}

func (s *Session) updateMenu(in input.Intents) menu.Action {
	switch action := s.PauseMenu.Update(in); action {
	case menu.ActionResume:
		s.SetPaused(false)
	case menu.ActionSave:
		if err := s.Save(); err != nil {
			logging.Error("Save failed: %v", err)
			s.PauseMenu.Status = "Save failed"
		} else {
			s.PauseMenu.Status = "Saved " + s.slot
		}
	case menu.ActionQuit:
		return action
	}
	return menu.ActionNone
}

func (s *Session) updatePick() {
	p := s.Player
	s.Pick = physics.Raycast(s.World, p.Position, p.Pitch, p.Yaw, physics.RayStep, physics.RayMaxSteps)
}

// refreshMesh rebuilds the mesh when the grid changed. A partial mesh is
// kept and drawn.
func (s *Session) refreshMesh() {
	if !s.World.IsDirty() {
		return
	}
	if err := s.builder.Rebuild(s.Mesh, s.World); err != nil {
		logging.Warn("Mesh rebuild: %v", err)
	}
	s.World.SetClean()
}

// SetPaused enters or leaves the pause menu.
func (s *Session) SetPaused(paused bool) {
	s.Paused = paused
	if paused {
		s.PauseMenu.Reset()
	}
}

// Save writes the world to the configured slot.
func (s *Session) Save() error {
	if s.store == nil {
		return errors.New("no store configured")
	}
	if err := s.store.Save(s.slot, s.World); err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	logging.Info("Saved world to %q (checksum %016x)", s.slot, s.World.Checksum())
	return nil
}

// RenderContext collects what the renderables need for this frame.
func (s *Session) RenderContext(surface graphics.Surface, dt float64, frames *profiling.FrameTimer) renderer.RenderContext {
	ctx := renderer.RenderContext{
		Surface:   surface,
		Camera:    s.Player.Camera(),
		Mesh:      s.Mesh,
		Palette:   s.Palette,
		Player:    s.Player,
		Pick:      s.Pick,
		DT:        dt,
		Paused:    s.Paused,
		PauseMenu: s.PauseMenu,
	}
	if frames != nil {
		ctx.FPS = frames.FPS()
		ctx.FrameTime = frames.Average()
	}
	return ctx
}
