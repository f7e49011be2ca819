package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/lorewright/lorewright/internal/graph"
	"github.com/lorewright/lorewright/internal/model"
)

// Postgres implements Store on PostgreSQL. Scene graphs are persisted as
// JSONB columns and deserialized on fetch.
type Postgres struct {
	db *sql.DB
}

var _ Store = (*Postgres)(nil)

func NewPostgres(connStr string) (*Postgres, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	p := &Postgres{db: db}
	if err := p.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return p, nil
}

func (p *Postgres) Close() error { return p.db.Close() }

func (p *Postgres) createTables() error {
	query := `
		CREATE TABLE IF NOT EXISTS campaigns (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			cover_image TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS scenes (
			id          TEXT PRIMARY KEY,
			campaign_id TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			"order"     INTEGER NOT NULL DEFAULT 0,
			nodes       JSONB NOT NULL DEFAULT '[]',
			edges       JSONB NOT NULL DEFAULT '[]',
			viewport    JSONB,
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scenes_campaign ON scenes(campaign_id, "order");
		CREATE TABLE IF NOT EXISTS npcs (
			id          TEXT PRIMARY KEY,
			campaign_id TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			data        JSONB NOT NULL DEFAULT '{}',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_npcs_campaign ON npcs(campaign_id);
		CREATE TABLE IF NOT EXISTS quests (
			id          TEXT PRIMARY KEY,
			campaign_id TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			objectives  JSONB NOT NULL DEFAULT '[]',
			status      TEXT NOT NULL DEFAULT 'NOT_STARTED',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_quests_campaign ON quests(campaign_id);
		CREATE TABLE IF NOT EXISTS global_variables (
			id          TEXT PRIMARY KEY,
			campaign_id TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			type        TEXT NOT NULL,
			value       JSONB,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL,
			UNIQUE (campaign_id, name)
		);
		CREATE TABLE IF NOT EXISTS local_variables (
			id          TEXT PRIMARY KEY,
			scene_id    TEXT NOT NULL REFERENCES scenes(id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			type        TEXT NOT NULL,
			value       JSONB,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL,
			UNIQUE (scene_id, name)
		);
	`
	_, err := p.db.Exec(query)
	return err
}

// ---- campaigns ----

func (p *Postgres) Campaigns(ctx context.Context) ([]model.Campaign, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, name, description, cover_image, created_at, updated_at FROM campaigns ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CoverImage, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) Campaign(ctx context.Context, id string) (model.Campaign, error) {
	var c model.Campaign
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, description, cover_image, created_at, updated_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CoverImage, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Campaign{}, ErrNotFound
	}
	return c, err
}

func (p *Postgres) CreateCampaign(ctx context.Context, name, description string) (model.Campaign, error) {
	now := time.Now().UTC()
	c := model.Campaign{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	return c, err
}

func (p *Postgres) UpdateCampaign(ctx context.Context, id, name, description string) (model.Campaign, error) {
	_, err := p.db.ExecContext(ctx,
		`UPDATE campaigns SET
			name = COALESCE(NULLIF($2, ''), name),
			description = COALESCE(NULLIF($3, ''), description),
			updated_at = $4
		WHERE id = $1`,
		id, name, description, time.Now().UTC())
	if err != nil {
		return model.Campaign{}, err
	}
	return p.Campaign(ctx, id)
}

func (p *Postgres) DeleteCampaign(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

// ---- scenes ----

const sceneColumns = `id, campaign_id, name, description, "order", nodes, edges, viewport, created_at, updated_at`

func (p *Postgres) scanScene(row interface{ Scan(...any) error }) (model.Scene, error) {
	var s model.Scene
	var nodes, edges []byte
	var viewport []byte
	err := row.Scan(&s.ID, &s.CampaignID, &s.Name, &s.Description, &s.Order,
		&nodes, &edges, &viewport, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Scene{}, ErrNotFound
	}
	if err != nil {
		return model.Scene{}, err
	}
	if err := json.Unmarshal(nodes, &s.Graph.Nodes); err != nil {
		return model.Scene{}, fmt.Errorf("scene %s: bad nodes payload: %w", s.ID, err)
	}
	if err := json.Unmarshal(edges, &s.Graph.Edges); err != nil {
		return model.Scene{}, fmt.Errorf("scene %s: bad edges payload: %w", s.ID, err)
	}
	if len(viewport) > 0 && string(viewport) != "null" {
		var v graph.Viewport
		if err := json.Unmarshal(viewport, &v); err != nil {
			return model.Scene{}, fmt.Errorf("scene %s: bad viewport payload: %w", s.ID, err)
		}
		s.Graph.Viewport = &v
	}
	return s, nil
}

func (p *Postgres) ScenesByCampaign(ctx context.Context, campaignID string) ([]model.Scene, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT `+sceneColumns+` FROM scenes WHERE campaign_id = $1 ORDER BY "order"`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Scene
	for rows.Next() {
		s, err := p.scanScene(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) Scene(ctx context.Context, sceneID string) (model.Scene, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT `+sceneColumns+` FROM scenes WHERE id = $1`, sceneID)
	return p.scanScene(row)
}

func (p *Postgres) CreateScene(ctx context.Context, campaignID, name, description string) (model.Scene, error) {
	var maxOrder sql.NullInt64
	err := p.db.QueryRowContext(ctx,
		`SELECT MAX("order") FROM scenes WHERE campaign_id = $1`, campaignID).Scan(&maxOrder)
	if err != nil {
		return model.Scene{}, err
	}

	now := time.Now().UTC()
	s := model.Scene{
		ID:          uuid.New().String(),
		CampaignID:  campaignID,
		Name:        name,
		Description: description,
		Order:       int(maxOrder.Int64) + 1,
		Graph:       graph.SceneGraph{Nodes: []graph.Node{}, Edges: []graph.Edge{}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO scenes (id, campaign_id, name, description, "order", created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CampaignID, s.Name, s.Description, s.Order, s.CreatedAt, s.UpdatedAt)
	return s, err
}

func (p *Postgres) UpdateScene(ctx context.Context, sceneID, name, description string) (model.Scene, error) {
	_, err := p.db.ExecContext(ctx,
		`UPDATE scenes SET
			name = COALESCE(NULLIF($2, ''), name),
			description = COALESCE(NULLIF($3, ''), description),
			updated_at = $4
		WHERE id = $1`,
		sceneID, name, description, time.Now().UTC())
	if err != nil {
		return model.Scene{}, err
	}
	return p.Scene(ctx, sceneID)
}

func (p *Postgres) SaveSceneGraph(ctx context.Context, sceneID string, g graph.SceneGraph) error {
	nodes, err := json.Marshal(g.Nodes)
	if err != nil {
		return fmt.Errorf("failed to serialize nodes: %w", err)
	}
	edges, err := json.Marshal(g.Edges)
	if err != nil {
		return fmt.Errorf("failed to serialize edges: %w", err)
	}
	var viewport []byte
	if g.Viewport != nil {
		viewport, err = json.Marshal(g.Viewport)
		if err != nil {
			return fmt.Errorf("failed to serialize viewport: %w", err)
		}
	}
	res, err := p.db.ExecContext(ctx,
		`UPDATE scenes SET nodes = $2, edges = $3, viewport = $4, updated_at = $5 WHERE id = $1`,
		sceneID, nodes, edges, viewport, time.Now().UTC())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DuplicateScene(ctx context.Context, sceneID, name string) (model.Scene, error) {
	original, err := p.Scene(ctx, sceneID)
	if err != nil {
		return model.Scene{}, err
	}
	if name == "" {
		name = original.Name + " (Copy)"
	}
	dup, err := p.CreateScene(ctx, original.CampaignID, name, original.Description)
	if err != nil {
		return model.Scene{}, err
	}
	if err := p.SaveSceneGraph(ctx, dup.ID, original.Graph); err != nil {
		return model.Scene{}, err
	}
	return p.Scene(ctx, dup.ID)
}

func (p *Postgres) ReorderScenes(ctx context.Context, campaignID string, orders []SceneOrder) ([]model.Scene, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, so := range orders {
		if _, err := tx.ExecContext(ctx,
			`UPDATE scenes SET "order" = $2 WHERE id = $1 AND campaign_id = $3`,
			so.SceneID, so.Order, campaignID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p.ScenesByCampaign(ctx, campaignID)
}

func (p *Postgres) DeleteScene(ctx context.Context, sceneID string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = $1`, sceneID)
	return err
}

// ---- npcs ----

// npcDoc is the JSONB document for the NPC fields beyond name.
type npcDoc struct {
	Race        string          `json:"race,omitempty"`
	Class       string          `json:"class,omitempty"`
	Level       int             `json:"level,omitempty"`
	Stats       *model.DndStats `json:"stats,omitempty"`
	ArmorClass  int             `json:"armorClass,omitempty"`
	HitPoints   int             `json:"hitPoints,omitempty"`
	Personality string          `json:"personality,omitempty"`
	Appearance  string          `json:"appearance,omitempty"`
	Backstory   string          `json:"backstory,omitempty"`
	Portrait    string          `json:"portrait,omitempty"`
	Faction     string          `json:"faction,omitempty"`
	Location    string          `json:"location,omitempty"`
}

func npcToDoc(n model.NPC) npcDoc {
	return npcDoc{
		Race: n.Race, Class: n.Class, Level: n.Level, Stats: n.Stats,
		ArmorClass: n.ArmorClass, HitPoints: n.HitPoints,
		Personality: n.Personality, Appearance: n.Appearance, Backstory: n.Backstory,
		Portrait: n.Portrait, Faction: n.Faction, Location: n.Location,
	}
}

func (d npcDoc) apply(n *model.NPC) {
	n.Race, n.Class, n.Level, n.Stats = d.Race, d.Class, d.Level, d.Stats
	n.ArmorClass, n.HitPoints = d.ArmorClass, d.HitPoints
	n.Personality, n.Appearance, n.Backstory = d.Personality, d.Appearance, d.Backstory
	n.Portrait, n.Faction, n.Location = d.Portrait, d.Faction, d.Location
}

func (p *Postgres) scanNPC(row interface{ Scan(...any) error }) (model.NPC, error) {
	var n model.NPC
	var data []byte
	err := row.Scan(&n.ID, &n.CampaignID, &n.Name, &data, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.NPC{}, ErrNotFound
	}
	if err != nil {
		return model.NPC{}, err
	}
	var doc npcDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.NPC{}, fmt.Errorf("npc %s: bad data payload: %w", n.ID, err)
	}
	doc.apply(&n)
	return n, nil
}

func (p *Postgres) NPCsByCampaign(ctx context.Context, campaignID string) ([]model.NPC, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, campaign_id, name, data, created_at, updated_at FROM npcs WHERE campaign_id = $1 ORDER BY created_at`,
		campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.NPC
	for rows.Next() {
		n, err := p.scanNPC(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (p *Postgres) NPC(ctx context.Context, id string) (model.NPC, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, campaign_id, name, data, created_at, updated_at FROM npcs WHERE id = $1`, id)
	return p.scanNPC(row)
}

func (p *Postgres) CreateNPC(ctx context.Context, npc model.NPC) (model.NPC, error) {
	now := time.Now().UTC()
	npc.ID = uuid.New().String()
	npc.CreatedAt, npc.UpdatedAt = now, now
	data, err := json.Marshal(npcToDoc(npc))
	if err != nil {
		return model.NPC{}, err
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO npcs (id, campaign_id, name, data, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		npc.ID, npc.CampaignID, npc.Name, data, npc.CreatedAt, npc.UpdatedAt)
	return npc, err
}

func (p *Postgres) UpdateNPC(ctx context.Context, npc model.NPC) (model.NPC, error) {
	npc.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(npcToDoc(npc))
	if err != nil {
		return model.NPC{}, err
	}
	res, err := p.db.ExecContext(ctx,
		`UPDATE npcs SET name = $2, data = $3, updated_at = $4 WHERE id = $1`,
		npc.ID, npc.Name, data, npc.UpdatedAt)
	if err != nil {
		return model.NPC{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.NPC{}, ErrNotFound
	}
	return p.NPC(ctx, npc.ID)
}

func (p *Postgres) DeleteNPC(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM npcs WHERE id = $1`, id)
	return err
}

// ---- quests ----

func (p *Postgres) scanQuest(row interface{ Scan(...any) error }) (model.Quest, error) {
	var q model.Quest
	var objectives []byte
	err := row.Scan(&q.ID, &q.CampaignID, &q.Name, &q.Description, &objectives, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Quest{}, ErrNotFound
	}
	if err != nil {
		return model.Quest{}, err
	}
	if err := json.Unmarshal(objectives, &q.Objectives); err != nil {
		return model.Quest{}, fmt.Errorf("quest %s: bad objectives payload: %w", q.ID, err)
	}
	return q, nil
}

func (p *Postgres) QuestsByCampaign(ctx context.Context, campaignID string) ([]model.Quest, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, campaign_id, name, description, objectives, status, created_at, updated_at
		 FROM quests WHERE campaign_id = $1 ORDER BY created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Quest
	for rows.Next() {
		q, err := p.scanQuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (p *Postgres) Quest(ctx context.Context, id string) (model.Quest, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, campaign_id, name, description, objectives, status, created_at, updated_at
		 FROM quests WHERE id = $1`, id)
	return p.scanQuest(row)
}

func (p *Postgres) CreateQuest(ctx context.Context, quest model.Quest) (model.Quest, error) {
	now := time.Now().UTC()
	quest.ID = uuid.New().String()
	quest.CreatedAt, quest.UpdatedAt = now, now
	if quest.Status == "" {
		quest.Status = model.QuestNotStarted
	}
	if quest.Objectives == nil {
		quest.Objectives = []model.QuestObjective{}
	}
	objectives, err := json.Marshal(quest.Objectives)
	if err != nil {
		return model.Quest{}, err
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO quests (id, campaign_id, name, description, objectives, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		quest.ID, quest.CampaignID, quest.Name, quest.Description, objectives, quest.Status, quest.CreatedAt, quest.UpdatedAt)
	return quest, err
}

func (p *Postgres) UpdateQuest(ctx context.Context, quest model.Quest) (model.Quest, error) {
	quest.UpdatedAt = time.Now().UTC()
	objectives, err := json.Marshal(quest.Objectives)
	if err != nil {
		return model.Quest{}, err
	}
	res, err := p.db.ExecContext(ctx,
		`UPDATE quests SET name = $2, description = $3, objectives = $4, status = $5, updated_at = $6 WHERE id = $1`,
		quest.ID, quest.Name, quest.Description, objectives, quest.Status, quest.UpdatedAt)
	if err != nil {
		return model.Quest{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Quest{}, ErrNotFound
	}
	return p.Quest(ctx, quest.ID)
}

func (p *Postgres) DeleteQuest(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM quests WHERE id = $1`, id)
	return err
}

// ---- variables ----

func (p *Postgres) variablesFor(ctx context.Context, table, ownerCol, ownerID string) ([]model.Variable, error) {
	rows, err := p.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, %s, name, type, value, description, created_at, updated_at FROM %s WHERE %s = $1`,
			ownerCol, table, ownerCol), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Variable
	for rows.Next() {
		v, err := scanVariable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVariable(row interface{ Scan(...any) error }) (model.Variable, error) {
	var v model.Variable
	var value []byte
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Type, &value, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Variable{}, ErrNotFound
	}
	if err != nil {
		return model.Variable{}, err
	}
	if len(value) > 0 {
		if err := json.Unmarshal(value, &v.Value); err != nil {
			return model.Variable{}, fmt.Errorf("variable %s: bad value payload: %w", v.ID, err)
		}
	}
	if v.Value == nil {
		v.Value = v.Type.Zero()
	}
	return v, nil
}

func (p *Postgres) createVariable(ctx context.Context, table, ownerCol, ownerID string, v model.Variable) (model.Variable, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND name = $2)`, table, ownerCol),
		ownerID, v.Name).Scan(&exists)
	if err != nil {
		return model.Variable{}, err
	}
	if exists {
		return model.Variable{}, ErrDuplicateName
	}

	now := time.Now().UTC()
	v.ID = uuid.New().String()
	v.OwnerID = ownerID
	v.CreatedAt, v.UpdatedAt = now, now
	if v.Value == nil {
		v.Value = v.Type.Zero()
	}
	value, err := json.Marshal(v.Value)
	if err != nil {
		return model.Variable{}, err
	}
	_, err = p.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, %s, name, type, value, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, table, ownerCol),
		v.ID, ownerID, v.Name, v.Type, value, v.Description, v.CreatedAt, v.UpdatedAt)
	return v, err
}

func (p *Postgres) updateVariable(ctx context.Context, table, ownerCol, variableID string, value any) (model.Variable, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return model.Variable{}, err
	}
	res, err := p.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET value = $2, updated_at = $3 WHERE id = $1`, table),
		variableID, raw, time.Now().UTC())
	if err != nil {
		return model.Variable{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Variable{}, ErrNotFound
	}
	row := p.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, %s, name, type, value, description, created_at, updated_at FROM %s WHERE id = $1`,
			ownerCol, table), variableID)
	return scanVariable(row)
}

func (p *Postgres) GlobalVariables(ctx context.Context, campaignID string) ([]model.Variable, error) {
	return p.variablesFor(ctx, "global_variables", "campaign_id", campaignID)
}

func (p *Postgres) CreateGlobalVariable(ctx context.Context, campaignID string, v model.Variable) (model.Variable, error) {
	return p.createVariable(ctx, "global_variables", "campaign_id", campaignID, v)
}

func (p *Postgres) UpdateGlobalVariable(ctx context.Context, variableID string, value any) (model.Variable, error) {
	return p.updateVariable(ctx, "global_variables", "campaign_id", variableID, value)
}

func (p *Postgres) DeleteGlobalVariable(ctx context.Context, variableID string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM global_variables WHERE id = $1`, variableID)
	return err
}

func (p *Postgres) LocalVariables(ctx context.Context, sceneID string) ([]model.Variable, error) {
	return p.variablesFor(ctx, "local_variables", "scene_id", sceneID)
}

func (p *Postgres) CreateLocalVariable(ctx context.Context, sceneID string, v model.Variable) (model.Variable, error) {
	return p.createVariable(ctx, "local_variables", "scene_id", sceneID, v)
}

func (p *Postgres) UpdateLocalVariable(ctx context.Context, variableID string, value any) (model.Variable, error) {
	return p.updateVariable(ctx, "local_variables", "scene_id", variableID, value)
}

func (p *Postgres) DeleteLocalVariable(ctx context.Context, variableID string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM local_variables WHERE id = $1`, variableID)
	return err
}
