// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reporadar/reporadar/ent/alert"
	"github.com/reporadar/reporadar/ent/analysis"
	"github.com/reporadar/reporadar/ent/batchrun"
	"github.com/reporadar/reporadar/ent/contributor"
	"github.com/reporadar/reporadar/ent/metricsnapshot"
	"github.com/reporadar/reporadar/ent/predicate"
	"github.com/reporadar/reporadar/ent/repository"
	"github.com/reporadar/reporadar/ent/schedulerstate"
	"github.com/reporadar/reporadar/ent/tierassignment"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert          = "Alert"
	TypeAnalysis       = "Analysis"
	TypeBatchRun       = "BatchRun"
	TypeContributor    = "Contributor"
	TypeMetricSnapshot = "MetricSnapshot"
	TypeRepository     = "Repository"
	TypeSchedulerState = "SchedulerState"
	TypeTierAssignment = "TierAssignment"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op                Op
	typ               string
	id                *string
	_type             *string
	level             *alert.Level
	message           *string
	metadata          *map[string]interface{}
	sent_at           *time.Time
	acknowledged      *bool
	clearedFields     map[string]struct{}
	repository        *string
	clearedrepository bool
	done              bool
	oldValue          func(context.Context) (*Alert, error)
	predicates        []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id string) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoID sets the "repo_id" field.
func (m *AlertMutation) SetRepoID(s string) {
	m.repository = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *AlertMutation) RepoID() (r string, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *AlertMutation) ResetRepoID() {
	m.repository = nil
}

// SetType sets the "type" field.
func (m *AlertMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *AlertMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AlertMutation) ResetType() {
	m._type = nil
}

// SetLevel sets the "level" field.
func (m *AlertMutation) SetLevel(a alert.Level) {
	m.level = &a
}

// Level returns the value of the "level" field in the mutation.
func (m *AlertMutation) Level() (r alert.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldLevel(ctx context.Context) (v alert.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AlertMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *AlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AlertMutation) ResetMessage() {
	m.message = nil
}

// SetMetadata sets the "metadata" field.
func (m *AlertMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AlertMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AlertMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[alert.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AlertMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[alert.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AlertMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, alert.FieldMetadata)
}

// SetSentAt sets the "sent_at" field.
func (m *AlertMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *AlertMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *AlertMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetAcknowledged sets the "acknowledged" field.
func (m *AlertMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *AlertMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *AlertMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetRepositoryID sets the "repository" edge to the Repository entity by id.
func (m *AlertMutation) SetRepositoryID(id string) {
	m.repository = &id
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (m *AlertMutation) ClearRepository() {
	m.clearedrepository = true
	m.clearedFields[alert.FieldRepoID] = struct{}{}
}

// RepositoryCleared reports if the "repository" edge to the Repository entity was cleared.
func (m *AlertMutation) RepositoryCleared() bool {
	return m.clearedrepository
}

// RepositoryID returns the "repository" edge ID in the mutation.
func (m *AlertMutation) RepositoryID() (id string, exists bool) {
	if m.repository != nil {
		return *m.repository, true
	}
	return
}

// RepositoryIDs returns the "repository" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RepositoryID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) RepositoryIDs() (ids []string) {
	if id := m.repository; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRepository resets all changes to the "repository" edge.
func (m *AlertMutation) ResetRepository() {
	m.repository = nil
	m.clearedrepository = false
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.repository != nil {
		fields = append(fields, alert.FieldRepoID)
	}
	if m._type != nil {
		fields = append(fields, alert.FieldType)
	}
	if m.level != nil {
		fields = append(fields, alert.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, alert.FieldMessage)
	}
	if m.metadata != nil {
		fields = append(fields, alert.FieldMetadata)
	}
	if m.sent_at != nil {
		fields = append(fields, alert.FieldSentAt)
	}
	if m.acknowledged != nil {
		fields = append(fields, alert.FieldAcknowledged)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldRepoID:
		return m.RepoID()
	case alert.FieldType:
		return m.GetType()
	case alert.FieldLevel:
		return m.Level()
	case alert.FieldMessage:
		return m.Message()
	case alert.FieldMetadata:
		return m.Metadata()
	case alert.FieldSentAt:
		return m.SentAt()
	case alert.FieldAcknowledged:
		return m.Acknowledged()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldRepoID:
		return m.OldRepoID(ctx)
	case alert.FieldType:
		return m.OldType(ctx)
	case alert.FieldLevel:
		return m.OldLevel(ctx)
	case alert.FieldMessage:
		return m.OldMessage(ctx)
	case alert.FieldMetadata:
		return m.OldMetadata(ctx)
	case alert.FieldSentAt:
		return m.OldSentAt(ctx)
	case alert.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case alert.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case alert.FieldLevel:
		v, ok := value.(alert.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case alert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case alert.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case alert.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case alert.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldMetadata) {
		fields = append(fields, alert.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldRepoID:
		m.ResetRepoID()
		return nil
	case alert.FieldType:
		m.ResetType()
		return nil
	case alert.FieldLevel:
		m.ResetLevel()
		return nil
	case alert.FieldMessage:
		m.ResetMessage()
		return nil
	case alert.FieldMetadata:
		m.ResetMetadata()
		return nil
	case alert.FieldSentAt:
		m.ResetSentAt()
		return nil
	case alert.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.repository != nil {
		edges = append(edges, alert.EdgeRepository)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeRepository:
		if id := m.repository; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrepository {
		edges = append(edges, alert.EdgeRepository)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeRepository:
		return m.clearedrepository
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeRepository:
		m.ClearRepository()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeRepository:
		m.ResetRepository()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	investment_score      *int
	addinvestment_score   *int
	innovation_score      *int
	addinnovation_score   *int
	team_score            *int
	addteam_score         *int
	market_score          *int
	addmarket_score       *int
	growth_score          *int
	addgrowth_score       *int
	technical_moat        *int
	addtechnical_moat     *int
	scalability           *int
	addscalability        *int
	developer_adoption    *int
	adddeveloper_adoption *int
	recommendation        *analysis.Recommendation
	summary               *string
	strengths             *[]string
	appendstrengths       []string
	risks                 *[]string
	appendrisks           []string
	questions             *[]string
	appendquestions       []string
	model_used            *string
	cost                  *float64
	addcost               *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	repository            *string
	clearedrepository     bool
	done                  bool
	oldValue              func(context.Context) (*Analysis, error)
	predicates            []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id string) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoID sets the "repo_id" field.
func (m *AnalysisMutation) SetRepoID(s string) {
	m.repository = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *AnalysisMutation) RepoID() (r string, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *AnalysisMutation) ResetRepoID() {
	m.repository = nil
}

// SetInvestmentScore sets the "investment_score" field.
func (m *AnalysisMutation) SetInvestmentScore(i int) {
	m.investment_score = &i
	m.addinvestment_score = nil
}

// InvestmentScore returns the value of the "investment_score" field in the mutation.
func (m *AnalysisMutation) InvestmentScore() (r int, exists bool) {
	v := m.investment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestmentScore returns the old "investment_score" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldInvestmentScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestmentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestmentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestmentScore: %w", err)
	}
	return oldValue.InvestmentScore, nil
}

// AddInvestmentScore adds i to the "investment_score" field.
func (m *AnalysisMutation) AddInvestmentScore(i int) {
	if m.addinvestment_score != nil {
		*m.addinvestment_score += i
	} else {
		m.addinvestment_score = &i
	}
}

// AddedInvestmentScore returns the value that was added to the "investment_score" field in this mutation.
func (m *AnalysisMutation) AddedInvestmentScore() (r int, exists bool) {
	v := m.addinvestment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetInvestmentScore resets all changes to the "investment_score" field.
func (m *AnalysisMutation) ResetInvestmentScore() {
	m.investment_score = nil
	m.addinvestment_score = nil
}

// SetInnovationScore sets the "innovation_score" field.
func (m *AnalysisMutation) SetInnovationScore(i int) {
	m.innovation_score = &i
	m.addinnovation_score = nil
}

// InnovationScore returns the value of the "innovation_score" field in the mutation.
func (m *AnalysisMutation) InnovationScore() (r int, exists bool) {
	v := m.innovation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldInnovationScore returns the old "innovation_score" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldInnovationScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInnovationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInnovationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInnovationScore: %w", err)
	}
	return oldValue.InnovationScore, nil
}

// AddInnovationScore adds i to the "innovation_score" field.
func (m *AnalysisMutation) AddInnovationScore(i int) {
	if m.addinnovation_score != nil {
		*m.addinnovation_score += i
	} else {
		m.addinnovation_score = &i
	}
}

// AddedInnovationScore returns the value that was added to the "innovation_score" field in this mutation.
func (m *AnalysisMutation) AddedInnovationScore() (r int, exists bool) {
	v := m.addinnovation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetInnovationScore resets all changes to the "innovation_score" field.
func (m *AnalysisMutation) ResetInnovationScore() {
	m.innovation_score = nil
	m.addinnovation_score = nil
}

// SetTeamScore sets the "team_score" field.
func (m *AnalysisMutation) SetTeamScore(i int) {
	m.team_score = &i
	m.addteam_score = nil
}

// TeamScore returns the value of the "team_score" field in the mutation.
func (m *AnalysisMutation) TeamScore() (r int, exists bool) {
	v := m.team_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamScore returns the old "team_score" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldTeamScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamScore: %w", err)
	}
	return oldValue.TeamScore, nil
}

// AddTeamScore adds i to the "team_score" field.
func (m *AnalysisMutation) AddTeamScore(i int) {
	if m.addteam_score != nil {
		*m.addteam_score += i
	} else {
		m.addteam_score = &i
	}
}

// AddedTeamScore returns the value that was added to the "team_score" field in this mutation.
func (m *AnalysisMutation) AddedTeamScore() (r int, exists bool) {
	v := m.addteam_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTeamScore resets all changes to the "team_score" field.
func (m *AnalysisMutation) ResetTeamScore() {
	m.team_score = nil
	m.addteam_score = nil
}

// SetMarketScore sets the "market_score" field.
func (m *AnalysisMutation) SetMarketScore(i int) {
	m.market_score = &i
	m.addmarket_score = nil
}

// MarketScore returns the value of the "market_score" field in the mutation.
func (m *AnalysisMutation) MarketScore() (r int, exists bool) {
	v := m.market_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketScore returns the old "market_score" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldMarketScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketScore: %w", err)
	}
	return oldValue.MarketScore, nil
}

// AddMarketScore adds i to the "market_score" field.
func (m *AnalysisMutation) AddMarketScore(i int) {
	if m.addmarket_score != nil {
		*m.addmarket_score += i
	} else {
		m.addmarket_score = &i
	}
}

// AddedMarketScore returns the value that was added to the "market_score" field in this mutation.
func (m *AnalysisMutation) AddedMarketScore() (r int, exists bool) {
	v := m.addmarket_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarketScore resets all changes to the "market_score" field.
func (m *AnalysisMutation) ResetMarketScore() {
	m.market_score = nil
	m.addmarket_score = nil
}

// SetGrowthScore sets the "growth_score" field.
func (m *AnalysisMutation) SetGrowthScore(i int) {
	m.growth_score = &i
	m.addgrowth_score = nil
}

// GrowthScore returns the value of the "growth_score" field in the mutation.
func (m *AnalysisMutation) GrowthScore() (r int, exists bool) {
	v := m.growth_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGrowthScore returns the old "growth_score" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldGrowthScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrowthScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrowthScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrowthScore: %w", err)
	}
	return oldValue.GrowthScore, nil
}

// AddGrowthScore adds i to the "growth_score" field.
func (m *AnalysisMutation) AddGrowthScore(i int) {
	if m.addgrowth_score != nil {
		*m.addgrowth_score += i
	} else {
		m.addgrowth_score = &i
	}
}

// AddedGrowthScore returns the value that was added to the "growth_score" field in this mutation.
func (m *AnalysisMutation) AddedGrowthScore() (r int, exists bool) {
	v := m.addgrowth_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrowthScore resets all changes to the "growth_score" field.
func (m *AnalysisMutation) ResetGrowthScore() {
	m.growth_score = nil
	m.addgrowth_score = nil
}

// SetTechnicalMoat sets the "technical_moat" field.
func (m *AnalysisMutation) SetTechnicalMoat(i int) {
	m.technical_moat = &i
	m.addtechnical_moat = nil
}

// TechnicalMoat returns the value of the "technical_moat" field in the mutation.
func (m *AnalysisMutation) TechnicalMoat() (r int, exists bool) {
	v := m.technical_moat
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnicalMoat returns the old "technical_moat" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldTechnicalMoat(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnicalMoat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnicalMoat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnicalMoat: %w", err)
	}
	return oldValue.TechnicalMoat, nil
}

// AddTechnicalMoat adds i to the "technical_moat" field.
func (m *AnalysisMutation) AddTechnicalMoat(i int) {
	if m.addtechnical_moat != nil {
		*m.addtechnical_moat += i
	} else {
		m.addtechnical_moat = &i
	}
}

// AddedTechnicalMoat returns the value that was added to the "technical_moat" field in this mutation.
func (m *AnalysisMutation) AddedTechnicalMoat() (r int, exists bool) {
	v := m.addtechnical_moat
	if v == nil {
		return
	}
	return *v, true
}

// ClearTechnicalMoat clears the value of the "technical_moat" field.
func (m *AnalysisMutation) ClearTechnicalMoat() {
	m.technical_moat = nil
	m.addtechnical_moat = nil
	m.clearedFields[analysis.FieldTechnicalMoat] = struct{}{}
}

// TechnicalMoatCleared returns if the "technical_moat" field was cleared in this mutation.
func (m *AnalysisMutation) TechnicalMoatCleared() bool {
	_, ok := m.clearedFields[analysis.FieldTechnicalMoat]
	return ok
}

// ResetTechnicalMoat resets all changes to the "technical_moat" field.
func (m *AnalysisMutation) ResetTechnicalMoat() {
	m.technical_moat = nil
	m.addtechnical_moat = nil
	delete(m.clearedFields, analysis.FieldTechnicalMoat)
}

// SetScalability sets the "scalability" field.
func (m *AnalysisMutation) SetScalability(i int) {
	m.scalability = &i
	m.addscalability = nil
}

// Scalability returns the value of the "scalability" field in the mutation.
func (m *AnalysisMutation) Scalability() (r int, exists bool) {
	v := m.scalability
	if v == nil {
		return
	}
	return *v, true
}

// OldScalability returns the old "scalability" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldScalability(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScalability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScalability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScalability: %w", err)
	}
	return oldValue.Scalability, nil
}

// AddScalability adds i to the "scalability" field.
func (m *AnalysisMutation) AddScalability(i int) {
	if m.addscalability != nil {
		*m.addscalability += i
	} else {
		m.addscalability = &i
	}
}

// AddedScalability returns the value that was added to the "scalability" field in this mutation.
func (m *AnalysisMutation) AddedScalability() (r int, exists bool) {
	v := m.addscalability
	if v == nil {
		return
	}
	return *v, true
}

// ClearScalability clears the value of the "scalability" field.
func (m *AnalysisMutation) ClearScalability() {
	m.scalability = nil
	m.addscalability = nil
	m.clearedFields[analysis.FieldScalability] = struct{}{}
}

// ScalabilityCleared returns if the "scalability" field was cleared in this mutation.
func (m *AnalysisMutation) ScalabilityCleared() bool {
	_, ok := m.clearedFields[analysis.FieldScalability]
	return ok
}

// ResetScalability resets all changes to the "scalability" field.
func (m *AnalysisMutation) ResetScalability() {
	m.scalability = nil
	m.addscalability = nil
	delete(m.clearedFields, analysis.FieldScalability)
}

// SetDeveloperAdoption sets the "developer_adoption" field.
func (m *AnalysisMutation) SetDeveloperAdoption(i int) {
	m.developer_adoption = &i
	m.adddeveloper_adoption = nil
}

// DeveloperAdoption returns the value of the "developer_adoption" field in the mutation.
func (m *AnalysisMutation) DeveloperAdoption() (r int, exists bool) {
	v := m.developer_adoption
	if v == nil {
		return
	}
	return *v, true
}

// OldDeveloperAdoption returns the old "developer_adoption" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldDeveloperAdoption(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeveloperAdoption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeveloperAdoption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeveloperAdoption: %w", err)
	}
	return oldValue.DeveloperAdoption, nil
}

// AddDeveloperAdoption adds i to the "developer_adoption" field.
func (m *AnalysisMutation) AddDeveloperAdoption(i int) {
	if m.adddeveloper_adoption != nil {
		*m.adddeveloper_adoption += i
	} else {
		m.adddeveloper_adoption = &i
	}
}

// AddedDeveloperAdoption returns the value that was added to the "developer_adoption" field in this mutation.
func (m *AnalysisMutation) AddedDeveloperAdoption() (r int, exists bool) {
	v := m.adddeveloper_adoption
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeveloperAdoption clears the value of the "developer_adoption" field.
func (m *AnalysisMutation) ClearDeveloperAdoption() {
	m.developer_adoption = nil
	m.adddeveloper_adoption = nil
	m.clearedFields[analysis.FieldDeveloperAdoption] = struct{}{}
}

// DeveloperAdoptionCleared returns if the "developer_adoption" field was cleared in this mutation.
func (m *AnalysisMutation) DeveloperAdoptionCleared() bool {
	_, ok := m.clearedFields[analysis.FieldDeveloperAdoption]
	return ok
}

// ResetDeveloperAdoption resets all changes to the "developer_adoption" field.
func (m *AnalysisMutation) ResetDeveloperAdoption() {
	m.developer_adoption = nil
	m.adddeveloper_adoption = nil
	delete(m.clearedFields, analysis.FieldDeveloperAdoption)
}

// SetRecommendation sets the "recommendation" field.
func (m *AnalysisMutation) SetRecommendation(a analysis.Recommendation) {
	m.recommendation = &a
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *AnalysisMutation) Recommendation() (r analysis.Recommendation, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRecommendation(ctx context.Context) (v analysis.Recommendation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *AnalysisMutation) ResetRecommendation() {
	m.recommendation = nil
}

// SetSummary sets the "summary" field.
func (m *AnalysisMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AnalysisMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AnalysisMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[analysis.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AnalysisMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[analysis.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AnalysisMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, analysis.FieldSummary)
}

// SetStrengths sets the "strengths" field.
func (m *AnalysisMutation) SetStrengths(s []string) {
	m.strengths = &s
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *AnalysisMutation) Strengths() (r []string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds s to the "strengths" field.
func (m *AnalysisMutation) AppendStrengths(s []string) {
	m.appendstrengths = append(m.appendstrengths, s...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *AnalysisMutation) AppendedStrengths() ([]string, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *AnalysisMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[analysis.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *AnalysisMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *AnalysisMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, analysis.FieldStrengths)
}

// SetRisks sets the "risks" field.
func (m *AnalysisMutation) SetRisks(s []string) {
	m.risks = &s
	m.appendrisks = nil
}

// Risks returns the value of the "risks" field in the mutation.
func (m *AnalysisMutation) Risks() (r []string, exists bool) {
	v := m.risks
	if v == nil {
		return
	}
	return *v, true
}

// OldRisks returns the old "risks" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRisks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisks: %w", err)
	}
	return oldValue.Risks, nil
}

// AppendRisks adds s to the "risks" field.
func (m *AnalysisMutation) AppendRisks(s []string) {
	m.appendrisks = append(m.appendrisks, s...)
}

// AppendedRisks returns the list of values that were appended to the "risks" field in this mutation.
func (m *AnalysisMutation) AppendedRisks() ([]string, bool) {
	if len(m.appendrisks) == 0 {
		return nil, false
	}
	return m.appendrisks, true
}

// ClearRisks clears the value of the "risks" field.
func (m *AnalysisMutation) ClearRisks() {
	m.risks = nil
	m.appendrisks = nil
	m.clearedFields[analysis.FieldRisks] = struct{}{}
}

// RisksCleared returns if the "risks" field was cleared in this mutation.
func (m *AnalysisMutation) RisksCleared() bool {
	_, ok := m.clearedFields[analysis.FieldRisks]
	return ok
}

// ResetRisks resets all changes to the "risks" field.
func (m *AnalysisMutation) ResetRisks() {
	m.risks = nil
	m.appendrisks = nil
	delete(m.clearedFields, analysis.FieldRisks)
}

// SetQuestions sets the "questions" field.
func (m *AnalysisMutation) SetQuestions(s []string) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *AnalysisMutation) Questions() (r []string, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *AnalysisMutation) AppendQuestions(s []string) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *AnalysisMutation) AppendedQuestions() ([]string, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *AnalysisMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[analysis.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *AnalysisMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *AnalysisMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, analysis.FieldQuestions)
}

// SetModelUsed sets the "model_used" field.
func (m *AnalysisMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *AnalysisMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *AnalysisMutation) ResetModelUsed() {
	m.model_used = nil
}

// SetCost sets the "cost" field.
func (m *AnalysisMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *AnalysisMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *AnalysisMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *AnalysisMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *AnalysisMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRepositoryID sets the "repository" edge to the Repository entity by id.
func (m *AnalysisMutation) SetRepositoryID(id string) {
	m.repository = &id
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (m *AnalysisMutation) ClearRepository() {
	m.clearedrepository = true
	m.clearedFields[analysis.FieldRepoID] = struct{}{}
}

// RepositoryCleared reports if the "repository" edge to the Repository entity was cleared.
func (m *AnalysisMutation) RepositoryCleared() bool {
	return m.clearedrepository
}

// RepositoryID returns the "repository" edge ID in the mutation.
func (m *AnalysisMutation) RepositoryID() (id string, exists bool) {
	if m.repository != nil {
		return *m.repository, true
	}
	return
}

// RepositoryIDs returns the "repository" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RepositoryID instead. It exists only for internal usage by the builders.
func (m *AnalysisMutation) RepositoryIDs() (ids []string) {
	if id := m.repository; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRepository resets all changes to the "repository" edge.
func (m *AnalysisMutation) ResetRepository() {
	m.repository = nil
	m.clearedrepository = false
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.repository != nil {
		fields = append(fields, analysis.FieldRepoID)
	}
	if m.investment_score != nil {
		fields = append(fields, analysis.FieldInvestmentScore)
	}
	if m.innovation_score != nil {
		fields = append(fields, analysis.FieldInnovationScore)
	}
	if m.team_score != nil {
		fields = append(fields, analysis.FieldTeamScore)
	}
	if m.market_score != nil {
		fields = append(fields, analysis.FieldMarketScore)
	}
	if m.growth_score != nil {
		fields = append(fields, analysis.FieldGrowthScore)
	}
	if m.technical_moat != nil {
		fields = append(fields, analysis.FieldTechnicalMoat)
	}
	if m.scalability != nil {
		fields = append(fields, analysis.FieldScalability)
	}
	if m.developer_adoption != nil {
		fields = append(fields, analysis.FieldDeveloperAdoption)
	}
	if m.recommendation != nil {
		fields = append(fields, analysis.FieldRecommendation)
	}
	if m.summary != nil {
		fields = append(fields, analysis.FieldSummary)
	}
	if m.strengths != nil {
		fields = append(fields, analysis.FieldStrengths)
	}
	if m.risks != nil {
		fields = append(fields, analysis.FieldRisks)
	}
	if m.questions != nil {
		fields = append(fields, analysis.FieldQuestions)
	}
	if m.model_used != nil {
		fields = append(fields, analysis.FieldModelUsed)
	}
	if m.cost != nil {
		fields = append(fields, analysis.FieldCost)
	}
	if m.created_at != nil {
		fields = append(fields, analysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldRepoID:
		return m.RepoID()
	case analysis.FieldInvestmentScore:
		return m.InvestmentScore()
	case analysis.FieldInnovationScore:
		return m.InnovationScore()
	case analysis.FieldTeamScore:
		return m.TeamScore()
	case analysis.FieldMarketScore:
		return m.MarketScore()
	case analysis.FieldGrowthScore:
		return m.GrowthScore()
	case analysis.FieldTechnicalMoat:
		return m.TechnicalMoat()
	case analysis.FieldScalability:
		return m.Scalability()
	case analysis.FieldDeveloperAdoption:
		return m.DeveloperAdoption()
	case analysis.FieldRecommendation:
		return m.Recommendation()
	case analysis.FieldSummary:
		return m.Summary()
	case analysis.FieldStrengths:
		return m.Strengths()
	case analysis.FieldRisks:
		return m.Risks()
	case analysis.FieldQuestions:
		return m.Questions()
	case analysis.FieldModelUsed:
		return m.ModelUsed()
	case analysis.FieldCost:
		return m.Cost()
	case analysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldRepoID:
		return m.OldRepoID(ctx)
	case analysis.FieldInvestmentScore:
		return m.OldInvestmentScore(ctx)
	case analysis.FieldInnovationScore:
		return m.OldInnovationScore(ctx)
	case analysis.FieldTeamScore:
		return m.OldTeamScore(ctx)
	case analysis.FieldMarketScore:
		return m.OldMarketScore(ctx)
	case analysis.FieldGrowthScore:
		return m.OldGrowthScore(ctx)
	case analysis.FieldTechnicalMoat:
		return m.OldTechnicalMoat(ctx)
	case analysis.FieldScalability:
		return m.OldScalability(ctx)
	case analysis.FieldDeveloperAdoption:
		return m.OldDeveloperAdoption(ctx)
	case analysis.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case analysis.FieldSummary:
		return m.OldSummary(ctx)
	case analysis.FieldStrengths:
		return m.OldStrengths(ctx)
	case analysis.FieldRisks:
		return m.OldRisks(ctx)
	case analysis.FieldQuestions:
		return m.OldQuestions(ctx)
	case analysis.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case analysis.FieldCost:
		return m.OldCost(ctx)
	case analysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case analysis.FieldInvestmentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestmentScore(v)
		return nil
	case analysis.FieldInnovationScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInnovationScore(v)
		return nil
	case analysis.FieldTeamScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamScore(v)
		return nil
	case analysis.FieldMarketScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketScore(v)
		return nil
	case analysis.FieldGrowthScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrowthScore(v)
		return nil
	case analysis.FieldTechnicalMoat:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnicalMoat(v)
		return nil
	case analysis.FieldScalability:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScalability(v)
		return nil
	case analysis.FieldDeveloperAdoption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeveloperAdoption(v)
		return nil
	case analysis.FieldRecommendation:
		v, ok := value.(analysis.Recommendation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case analysis.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case analysis.FieldStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case analysis.FieldRisks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisks(v)
		return nil
	case analysis.FieldQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case analysis.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case analysis.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case analysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addinvestment_score != nil {
		fields = append(fields, analysis.FieldInvestmentScore)
	}
	if m.addinnovation_score != nil {
		fields = append(fields, analysis.FieldInnovationScore)
	}
	if m.addteam_score != nil {
		fields = append(fields, analysis.FieldTeamScore)
	}
	if m.addmarket_score != nil {
		fields = append(fields, analysis.FieldMarketScore)
	}
	if m.addgrowth_score != nil {
		fields = append(fields, analysis.FieldGrowthScore)
	}
	if m.addtechnical_moat != nil {
		fields = append(fields, analysis.FieldTechnicalMoat)
	}
	if m.addscalability != nil {
		fields = append(fields, analysis.FieldScalability)
	}
	if m.adddeveloper_adoption != nil {
		fields = append(fields, analysis.FieldDeveloperAdoption)
	}
	if m.addcost != nil {
		fields = append(fields, analysis.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldInvestmentScore:
		return m.AddedInvestmentScore()
	case analysis.FieldInnovationScore:
		return m.AddedInnovationScore()
	case analysis.FieldTeamScore:
		return m.AddedTeamScore()
	case analysis.FieldMarketScore:
		return m.AddedMarketScore()
	case analysis.FieldGrowthScore:
		return m.AddedGrowthScore()
	case analysis.FieldTechnicalMoat:
		return m.AddedTechnicalMoat()
	case analysis.FieldScalability:
		return m.AddedScalability()
	case analysis.FieldDeveloperAdoption:
		return m.AddedDeveloperAdoption()
	case analysis.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldInvestmentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInvestmentScore(v)
		return nil
	case analysis.FieldInnovationScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInnovationScore(v)
		return nil
	case analysis.FieldTeamScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTeamScore(v)
		return nil
	case analysis.FieldMarketScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarketScore(v)
		return nil
	case analysis.FieldGrowthScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrowthScore(v)
		return nil
	case analysis.FieldTechnicalMoat:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTechnicalMoat(v)
		return nil
	case analysis.FieldScalability:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScalability(v)
		return nil
	case analysis.FieldDeveloperAdoption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeveloperAdoption(v)
		return nil
	case analysis.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldTechnicalMoat) {
		fields = append(fields, analysis.FieldTechnicalMoat)
	}
	if m.FieldCleared(analysis.FieldScalability) {
		fields = append(fields, analysis.FieldScalability)
	}
	if m.FieldCleared(analysis.FieldDeveloperAdoption) {
		fields = append(fields, analysis.FieldDeveloperAdoption)
	}
	if m.FieldCleared(analysis.FieldSummary) {
		fields = append(fields, analysis.FieldSummary)
	}
	if m.FieldCleared(analysis.FieldStrengths) {
		fields = append(fields, analysis.FieldStrengths)
	}
	if m.FieldCleared(analysis.FieldRisks) {
		fields = append(fields, analysis.FieldRisks)
	}
	if m.FieldCleared(analysis.FieldQuestions) {
		fields = append(fields, analysis.FieldQuestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldTechnicalMoat:
		m.ClearTechnicalMoat()
		return nil
	case analysis.FieldScalability:
		m.ClearScalability()
		return nil
	case analysis.FieldDeveloperAdoption:
		m.ClearDeveloperAdoption()
		return nil
	case analysis.FieldSummary:
		m.ClearSummary()
		return nil
	case analysis.FieldStrengths:
		m.ClearStrengths()
		return nil
	case analysis.FieldRisks:
		m.ClearRisks()
		return nil
	case analysis.FieldQuestions:
		m.ClearQuestions()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldRepoID:
		m.ResetRepoID()
		return nil
	case analysis.FieldInvestmentScore:
		m.ResetInvestmentScore()
		return nil
	case analysis.FieldInnovationScore:
		m.ResetInnovationScore()
		return nil
	case analysis.FieldTeamScore:
		m.ResetTeamScore()
		return nil
	case analysis.FieldMarketScore:
		m.ResetMarketScore()
		return nil
	case analysis.FieldGrowthScore:
		m.ResetGrowthScore()
		return nil
	case analysis.FieldTechnicalMoat:
		m.ResetTechnicalMoat()
		return nil
	case analysis.FieldScalability:
		m.ResetScalability()
		return nil
	case analysis.FieldDeveloperAdoption:
		m.ResetDeveloperAdoption()
		return nil
	case analysis.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case analysis.FieldSummary:
		m.ResetSummary()
		return nil
	case analysis.FieldStrengths:
		m.ResetStrengths()
		return nil
	case analysis.FieldRisks:
		m.ResetRisks()
		return nil
	case analysis.FieldQuestions:
		m.ResetQuestions()
		return nil
	case analysis.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case analysis.FieldCost:
		m.ResetCost()
		return nil
	case analysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.repository != nil {
		edges = append(edges, analysis.EdgeRepository)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgeRepository:
		if id := m.repository; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrepository {
		edges = append(edges, analysis.EdgeRepository)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case analysis.EdgeRepository:
		return m.clearedrepository
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	switch name {
	case analysis.EdgeRepository:
		m.ClearRepository()
		return nil
	}
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	switch name {
	case analysis.EdgeRepository:
		m.ResetRepository()
		return nil
	}
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// BatchRunMutation represents an operation that mutates the BatchRun nodes in the graph.
type BatchRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	status               *batchrun.Status
	total                *int
	addtotal             *int
	completed            *int
	addcompleted         *int
	failed               *int
	addfailed            *int
	skipped              *int
	addskipped           *int
	started_at           *time.Time
	ended_at             *time.Time
	current_repo         *string
	estimated_completion *time.Time
	repositories         *[]string
	appendrepositories   []string
	results              *[]map[string]interface{}
	appendresults        []map[string]interface{}
	health               *map[string]interface{}
	recovery_attempts    *int
	addrecovery_attempts *int
	credits_estimated    *float64
	addcredits_estimated *float64
	credits_actual       *float64
	addcredits_actual    *float64
	credits_limit        *float64
	addcredits_limit     *float64
	checkpoint           *map[string]interface{}
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*BatchRun, error)
	predicates           []predicate.BatchRun
}

var _ ent.Mutation = (*BatchRunMutation)(nil)

// batchrunOption allows management of the mutation configuration using functional options.
type batchrunOption func(*BatchRunMutation)

// newBatchRunMutation creates new mutation for the BatchRun entity.
func newBatchRunMutation(c config, op Op, opts ...batchrunOption) *BatchRunMutation {
	m := &BatchRunMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchRunID sets the ID field of the mutation.
func withBatchRunID(id string) batchrunOption {
	return func(m *BatchRunMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchRun
		)
		m.oldValue = func(ctx context.Context) (*BatchRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchRun sets the old BatchRun of the mutation.
func withBatchRun(node *BatchRun) batchrunOption {
	return func(m *BatchRunMutation) {
		m.oldValue = func(context.Context) (*BatchRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchRun entities.
func (m *BatchRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *BatchRunMutation) SetStatus(b batchrun.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchRunMutation) Status() (r batchrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldStatus(ctx context.Context) (v batchrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchRunMutation) ResetStatus() {
	m.status = nil
}

// SetTotal sets the "total" field.
func (m *BatchRunMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *BatchRunMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *BatchRunMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *BatchRunMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *BatchRunMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetCompleted sets the "completed" field.
func (m *BatchRunMutation) SetCompleted(i int) {
	m.completed = &i
	m.addcompleted = nil
}

// Completed returns the value of the "completed" field in the mutation.
func (m *BatchRunMutation) Completed() (r int, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// AddCompleted adds i to the "completed" field.
func (m *BatchRunMutation) AddCompleted(i int) {
	if m.addcompleted != nil {
		*m.addcompleted += i
	} else {
		m.addcompleted = &i
	}
}

// AddedCompleted returns the value that was added to the "completed" field in this mutation.
func (m *BatchRunMutation) AddedCompleted() (r int, exists bool) {
	v := m.addcompleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleted resets all changes to the "completed" field.
func (m *BatchRunMutation) ResetCompleted() {
	m.completed = nil
	m.addcompleted = nil
}

// SetFailed sets the "failed" field.
func (m *BatchRunMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *BatchRunMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *BatchRunMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *BatchRunMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *BatchRunMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetSkipped sets the "skipped" field.
func (m *BatchRunMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *BatchRunMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *BatchRunMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *BatchRunMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *BatchRunMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *BatchRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *BatchRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *BatchRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[batchrun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *BatchRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *BatchRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, batchrun.FieldEndedAt)
}

// SetCurrentRepo sets the "current_repo" field.
func (m *BatchRunMutation) SetCurrentRepo(s string) {
	m.current_repo = &s
}

// CurrentRepo returns the value of the "current_repo" field in the mutation.
func (m *BatchRunMutation) CurrentRepo() (r string, exists bool) {
	v := m.current_repo
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentRepo returns the old "current_repo" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldCurrentRepo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentRepo: %w", err)
	}
	return oldValue.CurrentRepo, nil
}

// ClearCurrentRepo clears the value of the "current_repo" field.
func (m *BatchRunMutation) ClearCurrentRepo() {
	m.current_repo = nil
	m.clearedFields[batchrun.FieldCurrentRepo] = struct{}{}
}

// CurrentRepoCleared returns if the "current_repo" field was cleared in this mutation.
func (m *BatchRunMutation) CurrentRepoCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldCurrentRepo]
	return ok
}

// ResetCurrentRepo resets all changes to the "current_repo" field.
func (m *BatchRunMutation) ResetCurrentRepo() {
	m.current_repo = nil
	delete(m.clearedFields, batchrun.FieldCurrentRepo)
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (m *BatchRunMutation) SetEstimatedCompletion(t time.Time) {
	m.estimated_completion = &t
}

// EstimatedCompletion returns the value of the "estimated_completion" field in the mutation.
func (m *BatchRunMutation) EstimatedCompletion() (r time.Time, exists bool) {
	v := m.estimated_completion
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCompletion returns the old "estimated_completion" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldEstimatedCompletion(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCompletion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCompletion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCompletion: %w", err)
	}
	return oldValue.EstimatedCompletion, nil
}

// ClearEstimatedCompletion clears the value of the "estimated_completion" field.
func (m *BatchRunMutation) ClearEstimatedCompletion() {
	m.estimated_completion = nil
	m.clearedFields[batchrun.FieldEstimatedCompletion] = struct{}{}
}

// EstimatedCompletionCleared returns if the "estimated_completion" field was cleared in this mutation.
func (m *BatchRunMutation) EstimatedCompletionCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldEstimatedCompletion]
	return ok
}

// ResetEstimatedCompletion resets all changes to the "estimated_completion" field.
func (m *BatchRunMutation) ResetEstimatedCompletion() {
	m.estimated_completion = nil
	delete(m.clearedFields, batchrun.FieldEstimatedCompletion)
}

// SetRepositories sets the "repositories" field.
func (m *BatchRunMutation) SetRepositories(s []string) {
	m.repositories = &s
	m.appendrepositories = nil
}

// Repositories returns the value of the "repositories" field in the mutation.
func (m *BatchRunMutation) Repositories() (r []string, exists bool) {
	v := m.repositories
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositories returns the old "repositories" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldRepositories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositories: %w", err)
	}
	return oldValue.Repositories, nil
}

// AppendRepositories adds s to the "repositories" field.
func (m *BatchRunMutation) AppendRepositories(s []string) {
	m.appendrepositories = append(m.appendrepositories, s...)
}

// AppendedRepositories returns the list of values that were appended to the "repositories" field in this mutation.
func (m *BatchRunMutation) AppendedRepositories() ([]string, bool) {
	if len(m.appendrepositories) == 0 {
		return nil, false
	}
	return m.appendrepositories, true
}

// ResetRepositories resets all changes to the "repositories" field.
func (m *BatchRunMutation) ResetRepositories() {
	m.repositories = nil
	m.appendrepositories = nil
}

// SetResults sets the "results" field.
func (m *BatchRunMutation) SetResults(value []map[string]interface{}) {
	m.results = &value
	m.appendresults = nil
}

// Results returns the value of the "results" field in the mutation.
func (m *BatchRunMutation) Results() (r []map[string]interface{}, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// AppendResults adds value to the "results" field.
func (m *BatchRunMutation) AppendResults(value []map[string]interface{}) {
	m.appendresults = append(m.appendresults, value...)
}

// AppendedResults returns the list of values that were appended to the "results" field in this mutation.
func (m *BatchRunMutation) AppendedResults() ([]map[string]interface{}, bool) {
	if len(m.appendresults) == 0 {
		return nil, false
	}
	return m.appendresults, true
}

// ClearResults clears the value of the "results" field.
func (m *BatchRunMutation) ClearResults() {
	m.results = nil
	m.appendresults = nil
	m.clearedFields[batchrun.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *BatchRunMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *BatchRunMutation) ResetResults() {
	m.results = nil
	m.appendresults = nil
	delete(m.clearedFields, batchrun.FieldResults)
}

// SetHealth sets the "health" field.
func (m *BatchRunMutation) SetHealth(value map[string]interface{}) {
	m.health = &value
}

// Health returns the value of the "health" field in the mutation.
func (m *BatchRunMutation) Health() (r map[string]interface{}, exists bool) {
	v := m.health
	if v == nil {
		return
	}
	return *v, true
}

// OldHealth returns the old "health" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldHealth(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealth: %w", err)
	}
	return oldValue.Health, nil
}

// ClearHealth clears the value of the "health" field.
func (m *BatchRunMutation) ClearHealth() {
	m.health = nil
	m.clearedFields[batchrun.FieldHealth] = struct{}{}
}

// HealthCleared returns if the "health" field was cleared in this mutation.
func (m *BatchRunMutation) HealthCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldHealth]
	return ok
}

// ResetHealth resets all changes to the "health" field.
func (m *BatchRunMutation) ResetHealth() {
	m.health = nil
	delete(m.clearedFields, batchrun.FieldHealth)
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (m *BatchRunMutation) SetRecoveryAttempts(i int) {
	m.recovery_attempts = &i
	m.addrecovery_attempts = nil
}

// RecoveryAttempts returns the value of the "recovery_attempts" field in the mutation.
func (m *BatchRunMutation) RecoveryAttempts() (r int, exists bool) {
	v := m.recovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempts returns the old "recovery_attempts" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldRecoveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempts: %w", err)
	}
	return oldValue.RecoveryAttempts, nil
}

// AddRecoveryAttempts adds i to the "recovery_attempts" field.
func (m *BatchRunMutation) AddRecoveryAttempts(i int) {
	if m.addrecovery_attempts != nil {
		*m.addrecovery_attempts += i
	} else {
		m.addrecovery_attempts = &i
	}
}

// AddedRecoveryAttempts returns the value that was added to the "recovery_attempts" field in this mutation.
func (m *BatchRunMutation) AddedRecoveryAttempts() (r int, exists bool) {
	v := m.addrecovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempts resets all changes to the "recovery_attempts" field.
func (m *BatchRunMutation) ResetRecoveryAttempts() {
	m.recovery_attempts = nil
	m.addrecovery_attempts = nil
}

// SetCreditsEstimated sets the "credits_estimated" field.
func (m *BatchRunMutation) SetCreditsEstimated(f float64) {
	m.credits_estimated = &f
	m.addcredits_estimated = nil
}

// CreditsEstimated returns the value of the "credits_estimated" field in the mutation.
func (m *BatchRunMutation) CreditsEstimated() (r float64, exists bool) {
	v := m.credits_estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsEstimated returns the old "credits_estimated" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldCreditsEstimated(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsEstimated: %w", err)
	}
	return oldValue.CreditsEstimated, nil
}

// AddCreditsEstimated adds f to the "credits_estimated" field.
func (m *BatchRunMutation) AddCreditsEstimated(f float64) {
	if m.addcredits_estimated != nil {
		*m.addcredits_estimated += f
	} else {
		m.addcredits_estimated = &f
	}
}

// AddedCreditsEstimated returns the value that was added to the "credits_estimated" field in this mutation.
func (m *BatchRunMutation) AddedCreditsEstimated() (r float64, exists bool) {
	v := m.addcredits_estimated
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsEstimated resets all changes to the "credits_estimated" field.
func (m *BatchRunMutation) ResetCreditsEstimated() {
	m.credits_estimated = nil
	m.addcredits_estimated = nil
}

// SetCreditsActual sets the "credits_actual" field.
func (m *BatchRunMutation) SetCreditsActual(f float64) {
	m.credits_actual = &f
	m.addcredits_actual = nil
}

// CreditsActual returns the value of the "credits_actual" field in the mutation.
func (m *BatchRunMutation) CreditsActual() (r float64, exists bool) {
	v := m.credits_actual
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsActual returns the old "credits_actual" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldCreditsActual(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsActual is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsActual requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsActual: %w", err)
	}
	return oldValue.CreditsActual, nil
}

// AddCreditsActual adds f to the "credits_actual" field.
func (m *BatchRunMutation) AddCreditsActual(f float64) {
	if m.addcredits_actual != nil {
		*m.addcredits_actual += f
	} else {
		m.addcredits_actual = &f
	}
}

// AddedCreditsActual returns the value that was added to the "credits_actual" field in this mutation.
func (m *BatchRunMutation) AddedCreditsActual() (r float64, exists bool) {
	v := m.addcredits_actual
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsActual resets all changes to the "credits_actual" field.
func (m *BatchRunMutation) ResetCreditsActual() {
	m.credits_actual = nil
	m.addcredits_actual = nil
}

// SetCreditsLimit sets the "credits_limit" field.
func (m *BatchRunMutation) SetCreditsLimit(f float64) {
	m.credits_limit = &f
	m.addcredits_limit = nil
}

// CreditsLimit returns the value of the "credits_limit" field in the mutation.
func (m *BatchRunMutation) CreditsLimit() (r float64, exists bool) {
	v := m.credits_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsLimit returns the old "credits_limit" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldCreditsLimit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsLimit: %w", err)
	}
	return oldValue.CreditsLimit, nil
}

// AddCreditsLimit adds f to the "credits_limit" field.
func (m *BatchRunMutation) AddCreditsLimit(f float64) {
	if m.addcredits_limit != nil {
		*m.addcredits_limit += f
	} else {
		m.addcredits_limit = &f
	}
}

// AddedCreditsLimit returns the value that was added to the "credits_limit" field in this mutation.
func (m *BatchRunMutation) AddedCreditsLimit() (r float64, exists bool) {
	v := m.addcredits_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsLimit resets all changes to the "credits_limit" field.
func (m *BatchRunMutation) ResetCreditsLimit() {
	m.credits_limit = nil
	m.addcredits_limit = nil
}

// SetCheckpoint sets the "checkpoint" field.
func (m *BatchRunMutation) SetCheckpoint(value map[string]interface{}) {
	m.checkpoint = &value
}

// Checkpoint returns the value of the "checkpoint" field in the mutation.
func (m *BatchRunMutation) Checkpoint() (r map[string]interface{}, exists bool) {
	v := m.checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpoint returns the old "checkpoint" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldCheckpoint(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpoint: %w", err)
	}
	return oldValue.Checkpoint, nil
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (m *BatchRunMutation) ClearCheckpoint() {
	m.checkpoint = nil
	m.clearedFields[batchrun.FieldCheckpoint] = struct{}{}
}

// CheckpointCleared returns if the "checkpoint" field was cleared in this mutation.
func (m *BatchRunMutation) CheckpointCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldCheckpoint]
	return ok
}

// ResetCheckpoint resets all changes to the "checkpoint" field.
func (m *BatchRunMutation) ResetCheckpoint() {
	m.checkpoint = nil
	delete(m.clearedFields, batchrun.FieldCheckpoint)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BatchRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BatchRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BatchRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BatchRunMutation builder.
func (m *BatchRunMutation) Where(ps ...predicate.BatchRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchRun).
func (m *BatchRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchRunMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.status != nil {
		fields = append(fields, batchrun.FieldStatus)
	}
	if m.total != nil {
		fields = append(fields, batchrun.FieldTotal)
	}
	if m.completed != nil {
		fields = append(fields, batchrun.FieldCompleted)
	}
	if m.failed != nil {
		fields = append(fields, batchrun.FieldFailed)
	}
	if m.skipped != nil {
		fields = append(fields, batchrun.FieldSkipped)
	}
	if m.started_at != nil {
		fields = append(fields, batchrun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, batchrun.FieldEndedAt)
	}
	if m.current_repo != nil {
		fields = append(fields, batchrun.FieldCurrentRepo)
	}
	if m.estimated_completion != nil {
		fields = append(fields, batchrun.FieldEstimatedCompletion)
	}
	if m.repositories != nil {
		fields = append(fields, batchrun.FieldRepositories)
	}
	if m.results != nil {
		fields = append(fields, batchrun.FieldResults)
	}
	if m.health != nil {
		fields = append(fields, batchrun.FieldHealth)
	}
	if m.recovery_attempts != nil {
		fields = append(fields, batchrun.FieldRecoveryAttempts)
	}
	if m.credits_estimated != nil {
		fields = append(fields, batchrun.FieldCreditsEstimated)
	}
	if m.credits_actual != nil {
		fields = append(fields, batchrun.FieldCreditsActual)
	}
	if m.credits_limit != nil {
		fields = append(fields, batchrun.FieldCreditsLimit)
	}
	if m.checkpoint != nil {
		fields = append(fields, batchrun.FieldCheckpoint)
	}
	if m.updated_at != nil {
		fields = append(fields, batchrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchrun.FieldStatus:
		return m.Status()
	case batchrun.FieldTotal:
		return m.Total()
	case batchrun.FieldCompleted:
		return m.Completed()
	case batchrun.FieldFailed:
		return m.Failed()
	case batchrun.FieldSkipped:
		return m.Skipped()
	case batchrun.FieldStartedAt:
		return m.StartedAt()
	case batchrun.FieldEndedAt:
		return m.EndedAt()
	case batchrun.FieldCurrentRepo:
		return m.CurrentRepo()
	case batchrun.FieldEstimatedCompletion:
		return m.EstimatedCompletion()
	case batchrun.FieldRepositories:
		return m.Repositories()
	case batchrun.FieldResults:
		return m.Results()
	case batchrun.FieldHealth:
		return m.Health()
	case batchrun.FieldRecoveryAttempts:
		return m.RecoveryAttempts()
	case batchrun.FieldCreditsEstimated:
		return m.CreditsEstimated()
	case batchrun.FieldCreditsActual:
		return m.CreditsActual()
	case batchrun.FieldCreditsLimit:
		return m.CreditsLimit()
	case batchrun.FieldCheckpoint:
		return m.Checkpoint()
	case batchrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchrun.FieldStatus:
		return m.OldStatus(ctx)
	case batchrun.FieldTotal:
		return m.OldTotal(ctx)
	case batchrun.FieldCompleted:
		return m.OldCompleted(ctx)
	case batchrun.FieldFailed:
		return m.OldFailed(ctx)
	case batchrun.FieldSkipped:
		return m.OldSkipped(ctx)
	case batchrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batchrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case batchrun.FieldCurrentRepo:
		return m.OldCurrentRepo(ctx)
	case batchrun.FieldEstimatedCompletion:
		return m.OldEstimatedCompletion(ctx)
	case batchrun.FieldRepositories:
		return m.OldRepositories(ctx)
	case batchrun.FieldResults:
		return m.OldResults(ctx)
	case batchrun.FieldHealth:
		return m.OldHealth(ctx)
	case batchrun.FieldRecoveryAttempts:
		return m.OldRecoveryAttempts(ctx)
	case batchrun.FieldCreditsEstimated:
		return m.OldCreditsEstimated(ctx)
	case batchrun.FieldCreditsActual:
		return m.OldCreditsActual(ctx)
	case batchrun.FieldCreditsLimit:
		return m.OldCreditsLimit(ctx)
	case batchrun.FieldCheckpoint:
		return m.OldCheckpoint(ctx)
	case batchrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BatchRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchrun.FieldStatus:
		v, ok := value.(batchrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case batchrun.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case batchrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case batchrun.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case batchrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batchrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case batchrun.FieldCurrentRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentRepo(v)
		return nil
	case batchrun.FieldEstimatedCompletion:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCompletion(v)
		return nil
	case batchrun.FieldRepositories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositories(v)
		return nil
	case batchrun.FieldResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case batchrun.FieldHealth:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealth(v)
		return nil
	case batchrun.FieldRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempts(v)
		return nil
	case batchrun.FieldCreditsEstimated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsEstimated(v)
		return nil
	case batchrun.FieldCreditsActual:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsActual(v)
		return nil
	case batchrun.FieldCreditsLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsLimit(v)
		return nil
	case batchrun.FieldCheckpoint:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpoint(v)
		return nil
	case batchrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BatchRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, batchrun.FieldTotal)
	}
	if m.addcompleted != nil {
		fields = append(fields, batchrun.FieldCompleted)
	}
	if m.addfailed != nil {
		fields = append(fields, batchrun.FieldFailed)
	}
	if m.addskipped != nil {
		fields = append(fields, batchrun.FieldSkipped)
	}
	if m.addrecovery_attempts != nil {
		fields = append(fields, batchrun.FieldRecoveryAttempts)
	}
	if m.addcredits_estimated != nil {
		fields = append(fields, batchrun.FieldCreditsEstimated)
	}
	if m.addcredits_actual != nil {
		fields = append(fields, batchrun.FieldCreditsActual)
	}
	if m.addcredits_limit != nil {
		fields = append(fields, batchrun.FieldCreditsLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchrun.FieldTotal:
		return m.AddedTotal()
	case batchrun.FieldCompleted:
		return m.AddedCompleted()
	case batchrun.FieldFailed:
		return m.AddedFailed()
	case batchrun.FieldSkipped:
		return m.AddedSkipped()
	case batchrun.FieldRecoveryAttempts:
		return m.AddedRecoveryAttempts()
	case batchrun.FieldCreditsEstimated:
		return m.AddedCreditsEstimated()
	case batchrun.FieldCreditsActual:
		return m.AddedCreditsActual()
	case batchrun.FieldCreditsLimit:
		return m.AddedCreditsLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case batchrun.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleted(v)
		return nil
	case batchrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case batchrun.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	case batchrun.FieldRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempts(v)
		return nil
	case batchrun.FieldCreditsEstimated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsEstimated(v)
		return nil
	case batchrun.FieldCreditsActual:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsActual(v)
		return nil
	case batchrun.FieldCreditsLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsLimit(v)
		return nil
	}
	return fmt.Errorf("unknown BatchRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchrun.FieldEndedAt) {
		fields = append(fields, batchrun.FieldEndedAt)
	}
	if m.FieldCleared(batchrun.FieldCurrentRepo) {
		fields = append(fields, batchrun.FieldCurrentRepo)
	}
	if m.FieldCleared(batchrun.FieldEstimatedCompletion) {
		fields = append(fields, batchrun.FieldEstimatedCompletion)
	}
	if m.FieldCleared(batchrun.FieldResults) {
		fields = append(fields, batchrun.FieldResults)
	}
	if m.FieldCleared(batchrun.FieldHealth) {
		fields = append(fields, batchrun.FieldHealth)
	}
	if m.FieldCleared(batchrun.FieldCheckpoint) {
		fields = append(fields, batchrun.FieldCheckpoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchRunMutation) ClearField(name string) error {
	switch name {
	case batchrun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case batchrun.FieldCurrentRepo:
		m.ClearCurrentRepo()
		return nil
	case batchrun.FieldEstimatedCompletion:
		m.ClearEstimatedCompletion()
		return nil
	case batchrun.FieldResults:
		m.ClearResults()
		return nil
	case batchrun.FieldHealth:
		m.ClearHealth()
		return nil
	case batchrun.FieldCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown BatchRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchRunMutation) ResetField(name string) error {
	switch name {
	case batchrun.FieldStatus:
		m.ResetStatus()
		return nil
	case batchrun.FieldTotal:
		m.ResetTotal()
		return nil
	case batchrun.FieldCompleted:
		m.ResetCompleted()
		return nil
	case batchrun.FieldFailed:
		m.ResetFailed()
		return nil
	case batchrun.FieldSkipped:
		m.ResetSkipped()
		return nil
	case batchrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batchrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case batchrun.FieldCurrentRepo:
		m.ResetCurrentRepo()
		return nil
	case batchrun.FieldEstimatedCompletion:
		m.ResetEstimatedCompletion()
		return nil
	case batchrun.FieldRepositories:
		m.ResetRepositories()
		return nil
	case batchrun.FieldResults:
		m.ResetResults()
		return nil
	case batchrun.FieldHealth:
		m.ResetHealth()
		return nil
	case batchrun.FieldRecoveryAttempts:
		m.ResetRecoveryAttempts()
		return nil
	case batchrun.FieldCreditsEstimated:
		m.ResetCreditsEstimated()
		return nil
	case batchrun.FieldCreditsActual:
		m.ResetCreditsActual()
		return nil
	case batchrun.FieldCreditsLimit:
		m.ResetCreditsLimit()
		return nil
	case batchrun.FieldCheckpoint:
		m.ResetCheckpoint()
		return nil
	case batchrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BatchRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BatchRun edge %s", name)
}

// ContributorMutation represents an operation that mutates the Contributor nodes in the graph.
type ContributorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	login             *string
	contributions     *int
	addcontributions  *int
	recorded_at       *time.Time
	clearedFields     map[string]struct{}
	repository        *string
	clearedrepository bool
	done              bool
	oldValue          func(context.Context) (*Contributor, error)
	predicates        []predicate.Contributor
}

var _ ent.Mutation = (*ContributorMutation)(nil)

// contributorOption allows management of the mutation configuration using functional options.
type contributorOption func(*ContributorMutation)

// newContributorMutation creates new mutation for the Contributor entity.
func newContributorMutation(c config, op Op, opts ...contributorOption) *ContributorMutation {
	m := &ContributorMutation{
		config:        c,
		op:            op,
		typ:           TypeContributor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContributorID sets the ID field of the mutation.
func withContributorID(id string) contributorOption {
	return func(m *ContributorMutation) {
		var (
			err   error
			once  sync.Once
			value *Contributor
		)
		m.oldValue = func(ctx context.Context) (*Contributor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contributor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContributor sets the old Contributor of the mutation.
func withContributor(node *Contributor) contributorOption {
	return func(m *ContributorMutation) {
		m.oldValue = func(context.Context) (*Contributor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContributorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContributorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contributor entities.
func (m *ContributorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContributorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContributorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contributor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoID sets the "repo_id" field.
func (m *ContributorMutation) SetRepoID(s string) {
	m.repository = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *ContributorMutation) RepoID() (r string, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the Contributor entity.
// If the Contributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributorMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *ContributorMutation) ResetRepoID() {
	m.repository = nil
}

// SetLogin sets the "login" field.
func (m *ContributorMutation) SetLogin(s string) {
	m.login = &s
}

// Login returns the value of the "login" field in the mutation.
func (m *ContributorMutation) Login() (r string, exists bool) {
	v := m.login
	if v == nil {
		return
	}
	return *v, true
}

// OldLogin returns the old "login" field's value of the Contributor entity.
// If the Contributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributorMutation) OldLogin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogin: %w", err)
	}
	return oldValue.Login, nil
}

// ResetLogin resets all changes to the "login" field.
func (m *ContributorMutation) ResetLogin() {
	m.login = nil
}

// SetContributions sets the "contributions" field.
func (m *ContributorMutation) SetContributions(i int) {
	m.contributions = &i
	m.addcontributions = nil
}

// Contributions returns the value of the "contributions" field in the mutation.
func (m *ContributorMutation) Contributions() (r int, exists bool) {
	v := m.contributions
	if v == nil {
		return
	}
	return *v, true
}

// OldContributions returns the old "contributions" field's value of the Contributor entity.
// If the Contributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributorMutation) OldContributions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributions: %w", err)
	}
	return oldValue.Contributions, nil
}

// AddContributions adds i to the "contributions" field.
func (m *ContributorMutation) AddContributions(i int) {
	if m.addcontributions != nil {
		*m.addcontributions += i
	} else {
		m.addcontributions = &i
	}
}

// AddedContributions returns the value that was added to the "contributions" field in this mutation.
func (m *ContributorMutation) AddedContributions() (r int, exists bool) {
	v := m.addcontributions
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributions resets all changes to the "contributions" field.
func (m *ContributorMutation) ResetContributions() {
	m.contributions = nil
	m.addcontributions = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *ContributorMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *ContributorMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the Contributor entity.
// If the Contributor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributorMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *ContributorMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetRepositoryID sets the "repository" edge to the Repository entity by id.
func (m *ContributorMutation) SetRepositoryID(id string) {
	m.repository = &id
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (m *ContributorMutation) ClearRepository() {
	m.clearedrepository = true
	m.clearedFields[contributor.FieldRepoID] = struct{}{}
}

// RepositoryCleared reports if the "repository" edge to the Repository entity was cleared.
func (m *ContributorMutation) RepositoryCleared() bool {
	return m.clearedrepository
}

// RepositoryID returns the "repository" edge ID in the mutation.
func (m *ContributorMutation) RepositoryID() (id string, exists bool) {
	if m.repository != nil {
		return *m.repository, true
	}
	return
}

// RepositoryIDs returns the "repository" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RepositoryID instead. It exists only for internal usage by the builders.
func (m *ContributorMutation) RepositoryIDs() (ids []string) {
	if id := m.repository; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRepository resets all changes to the "repository" edge.
func (m *ContributorMutation) ResetRepository() {
	m.repository = nil
	m.clearedrepository = false
}

// Where appends a list predicates to the ContributorMutation builder.
func (m *ContributorMutation) Where(ps ...predicate.Contributor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContributorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContributorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contributor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContributorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContributorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contributor).
func (m *ContributorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContributorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.repository != nil {
		fields = append(fields, contributor.FieldRepoID)
	}
	if m.login != nil {
		fields = append(fields, contributor.FieldLogin)
	}
	if m.contributions != nil {
		fields = append(fields, contributor.FieldContributions)
	}
	if m.recorded_at != nil {
		fields = append(fields, contributor.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContributorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contributor.FieldRepoID:
		return m.RepoID()
	case contributor.FieldLogin:
		return m.Login()
	case contributor.FieldContributions:
		return m.Contributions()
	case contributor.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContributorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contributor.FieldRepoID:
		return m.OldRepoID(ctx)
	case contributor.FieldLogin:
		return m.OldLogin(ctx)
	case contributor.FieldContributions:
		return m.OldContributions(ctx)
	case contributor.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contributor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContributorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contributor.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case contributor.FieldLogin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogin(v)
		return nil
	case contributor.FieldContributions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributions(v)
		return nil
	case contributor.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contributor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContributorMutation) AddedFields() []string {
	var fields []string
	if m.addcontributions != nil {
		fields = append(fields, contributor.FieldContributions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContributorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contributor.FieldContributions:
		return m.AddedContributions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContributorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contributor.FieldContributions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributions(v)
		return nil
	}
	return fmt.Errorf("unknown Contributor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContributorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContributorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContributorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Contributor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContributorMutation) ResetField(name string) error {
	switch name {
	case contributor.FieldRepoID:
		m.ResetRepoID()
		return nil
	case contributor.FieldLogin:
		m.ResetLogin()
		return nil
	case contributor.FieldContributions:
		m.ResetContributions()
		return nil
	case contributor.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown Contributor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContributorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.repository != nil {
		edges = append(edges, contributor.EdgeRepository)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContributorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contributor.EdgeRepository:
		if id := m.repository; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContributorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContributorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContributorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrepository {
		edges = append(edges, contributor.EdgeRepository)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContributorMutation) EdgeCleared(name string) bool {
	switch name {
	case contributor.EdgeRepository:
		return m.clearedrepository
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContributorMutation) ClearEdge(name string) error {
	switch name {
	case contributor.EdgeRepository:
		m.ClearRepository()
		return nil
	}
	return fmt.Errorf("unknown Contributor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContributorMutation) ResetEdge(name string) error {
	switch name {
	case contributor.EdgeRepository:
		m.ResetRepository()
		return nil
	}
	return fmt.Errorf("unknown Contributor edge %s", name)
}

// MetricSnapshotMutation represents an operation that mutates the MetricSnapshot nodes in the graph.
type MetricSnapshotMutation struct {
	config
	op                Op
	typ               string
	id                *string
	stars             *int
	addstars          *int
	forks             *int
	addforks          *int
	open_issues       *int
	addopen_issues    *int
	watchers          *int
	addwatchers       *int
	contributors      *int
	addcontributors   *int
	commits_count     *int
	addcommits_count  *int
	recorded_at       *time.Time
	clearedFields     map[string]struct{}
	repository        *string
	clearedrepository bool
	done              bool
	oldValue          func(context.Context) (*MetricSnapshot, error)
	predicates        []predicate.MetricSnapshot
}

var _ ent.Mutation = (*MetricSnapshotMutation)(nil)

// metricsnapshotOption allows management of the mutation configuration using functional options.
type metricsnapshotOption func(*MetricSnapshotMutation)

// newMetricSnapshotMutation creates new mutation for the MetricSnapshot entity.
func newMetricSnapshotMutation(c config, op Op, opts ...metricsnapshotOption) *MetricSnapshotMutation {
	m := &MetricSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeMetricSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricSnapshotID sets the ID field of the mutation.
func withMetricSnapshotID(id string) metricsnapshotOption {
	return func(m *MetricSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *MetricSnapshot
		)
		m.oldValue = func(ctx context.Context) (*MetricSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetricSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetricSnapshot sets the old MetricSnapshot of the mutation.
func withMetricSnapshot(node *MetricSnapshot) metricsnapshotOption {
	return func(m *MetricSnapshotMutation) {
		m.oldValue = func(context.Context) (*MetricSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MetricSnapshot entities.
func (m *MetricSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetricSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoID sets the "repo_id" field.
func (m *MetricSnapshotMutation) SetRepoID(s string) {
	m.repository = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *MetricSnapshotMutation) RepoID() (r string, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *MetricSnapshotMutation) ResetRepoID() {
	m.repository = nil
}

// SetStars sets the "stars" field.
func (m *MetricSnapshotMutation) SetStars(i int) {
	m.stars = &i
	m.addstars = nil
}

// Stars returns the value of the "stars" field in the mutation.
func (m *MetricSnapshotMutation) Stars() (r int, exists bool) {
	v := m.stars
	if v == nil {
		return
	}
	return *v, true
}

// OldStars returns the old "stars" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStars: %w", err)
	}
	return oldValue.Stars, nil
}

// AddStars adds i to the "stars" field.
func (m *MetricSnapshotMutation) AddStars(i int) {
	if m.addstars != nil {
		*m.addstars += i
	} else {
		m.addstars = &i
	}
}

// AddedStars returns the value that was added to the "stars" field in this mutation.
func (m *MetricSnapshotMutation) AddedStars() (r int, exists bool) {
	v := m.addstars
	if v == nil {
		return
	}
	return *v, true
}

// ResetStars resets all changes to the "stars" field.
func (m *MetricSnapshotMutation) ResetStars() {
	m.stars = nil
	m.addstars = nil
}

// SetForks sets the "forks" field.
func (m *MetricSnapshotMutation) SetForks(i int) {
	m.forks = &i
	m.addforks = nil
}

// Forks returns the value of the "forks" field in the mutation.
func (m *MetricSnapshotMutation) Forks() (r int, exists bool) {
	v := m.forks
	if v == nil {
		return
	}
	return *v, true
}

// OldForks returns the old "forks" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldForks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForks: %w", err)
	}
	return oldValue.Forks, nil
}

// AddForks adds i to the "forks" field.
func (m *MetricSnapshotMutation) AddForks(i int) {
	if m.addforks != nil {
		*m.addforks += i
	} else {
		m.addforks = &i
	}
}

// AddedForks returns the value that was added to the "forks" field in this mutation.
func (m *MetricSnapshotMutation) AddedForks() (r int, exists bool) {
	v := m.addforks
	if v == nil {
		return
	}
	return *v, true
}

// ResetForks resets all changes to the "forks" field.
func (m *MetricSnapshotMutation) ResetForks() {
	m.forks = nil
	m.addforks = nil
}

// SetOpenIssues sets the "open_issues" field.
func (m *MetricSnapshotMutation) SetOpenIssues(i int) {
	m.open_issues = &i
	m.addopen_issues = nil
}

// OpenIssues returns the value of the "open_issues" field in the mutation.
func (m *MetricSnapshotMutation) OpenIssues() (r int, exists bool) {
	v := m.open_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenIssues returns the old "open_issues" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldOpenIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenIssues: %w", err)
	}
	return oldValue.OpenIssues, nil
}

// AddOpenIssues adds i to the "open_issues" field.
func (m *MetricSnapshotMutation) AddOpenIssues(i int) {
	if m.addopen_issues != nil {
		*m.addopen_issues += i
	} else {
		m.addopen_issues = &i
	}
}

// AddedOpenIssues returns the value that was added to the "open_issues" field in this mutation.
func (m *MetricSnapshotMutation) AddedOpenIssues() (r int, exists bool) {
	v := m.addopen_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpenIssues resets all changes to the "open_issues" field.
func (m *MetricSnapshotMutation) ResetOpenIssues() {
	m.open_issues = nil
	m.addopen_issues = nil
}

// SetWatchers sets the "watchers" field.
func (m *MetricSnapshotMutation) SetWatchers(i int) {
	m.watchers = &i
	m.addwatchers = nil
}

// Watchers returns the value of the "watchers" field in the mutation.
func (m *MetricSnapshotMutation) Watchers() (r int, exists bool) {
	v := m.watchers
	if v == nil {
		return
	}
	return *v, true
}

// OldWatchers returns the old "watchers" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldWatchers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWatchers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWatchers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWatchers: %w", err)
	}
	return oldValue.Watchers, nil
}

// AddWatchers adds i to the "watchers" field.
func (m *MetricSnapshotMutation) AddWatchers(i int) {
	if m.addwatchers != nil {
		*m.addwatchers += i
	} else {
		m.addwatchers = &i
	}
}

// AddedWatchers returns the value that was added to the "watchers" field in this mutation.
func (m *MetricSnapshotMutation) AddedWatchers() (r int, exists bool) {
	v := m.addwatchers
	if v == nil {
		return
	}
	return *v, true
}

// ResetWatchers resets all changes to the "watchers" field.
func (m *MetricSnapshotMutation) ResetWatchers() {
	m.watchers = nil
	m.addwatchers = nil
}

// SetContributors sets the "contributors" field.
func (m *MetricSnapshotMutation) SetContributors(i int) {
	m.contributors = &i
	m.addcontributors = nil
}

// Contributors returns the value of the "contributors" field in the mutation.
func (m *MetricSnapshotMutation) Contributors() (r int, exists bool) {
	v := m.contributors
	if v == nil {
		return
	}
	return *v, true
}

// OldContributors returns the old "contributors" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldContributors(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributors: %w", err)
	}
	return oldValue.Contributors, nil
}

// AddContributors adds i to the "contributors" field.
func (m *MetricSnapshotMutation) AddContributors(i int) {
	if m.addcontributors != nil {
		*m.addcontributors += i
	} else {
		m.addcontributors = &i
	}
}

// AddedContributors returns the value that was added to the "contributors" field in this mutation.
func (m *MetricSnapshotMutation) AddedContributors() (r int, exists bool) {
	v := m.addcontributors
	if v == nil {
		return
	}
	return *v, true
}

// ClearContributors clears the value of the "contributors" field.
func (m *MetricSnapshotMutation) ClearContributors() {
	m.contributors = nil
	m.addcontributors = nil
	m.clearedFields[metricsnapshot.FieldContributors] = struct{}{}
}

// ContributorsCleared returns if the "contributors" field was cleared in this mutation.
func (m *MetricSnapshotMutation) ContributorsCleared() bool {
	_, ok := m.clearedFields[metricsnapshot.FieldContributors]
	return ok
}

// ResetContributors resets all changes to the "contributors" field.
func (m *MetricSnapshotMutation) ResetContributors() {
	m.contributors = nil
	m.addcontributors = nil
	delete(m.clearedFields, metricsnapshot.FieldContributors)
}

// SetCommitsCount sets the "commits_count" field.
func (m *MetricSnapshotMutation) SetCommitsCount(i int) {
	m.commits_count = &i
	m.addcommits_count = nil
}

// CommitsCount returns the value of the "commits_count" field in the mutation.
func (m *MetricSnapshotMutation) CommitsCount() (r int, exists bool) {
	v := m.commits_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitsCount returns the old "commits_count" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldCommitsCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitsCount: %w", err)
	}
	return oldValue.CommitsCount, nil
}

// AddCommitsCount adds i to the "commits_count" field.
func (m *MetricSnapshotMutation) AddCommitsCount(i int) {
	if m.addcommits_count != nil {
		*m.addcommits_count += i
	} else {
		m.addcommits_count = &i
	}
}

// AddedCommitsCount returns the value that was added to the "commits_count" field in this mutation.
func (m *MetricSnapshotMutation) AddedCommitsCount() (r int, exists bool) {
	v := m.addcommits_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommitsCount clears the value of the "commits_count" field.
func (m *MetricSnapshotMutation) ClearCommitsCount() {
	m.commits_count = nil
	m.addcommits_count = nil
	m.clearedFields[metricsnapshot.FieldCommitsCount] = struct{}{}
}

// CommitsCountCleared returns if the "commits_count" field was cleared in this mutation.
func (m *MetricSnapshotMutation) CommitsCountCleared() bool {
	_, ok := m.clearedFields[metricsnapshot.FieldCommitsCount]
	return ok
}

// ResetCommitsCount resets all changes to the "commits_count" field.
func (m *MetricSnapshotMutation) ResetCommitsCount() {
	m.commits_count = nil
	m.addcommits_count = nil
	delete(m.clearedFields, metricsnapshot.FieldCommitsCount)
}

// SetRecordedAt sets the "recorded_at" field.
func (m *MetricSnapshotMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *MetricSnapshotMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the MetricSnapshot entity.
// If the MetricSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricSnapshotMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *MetricSnapshotMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetRepositoryID sets the "repository" edge to the Repository entity by id.
func (m *MetricSnapshotMutation) SetRepositoryID(id string) {
	m.repository = &id
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (m *MetricSnapshotMutation) ClearRepository() {
	m.clearedrepository = true
	m.clearedFields[metricsnapshot.FieldRepoID] = struct{}{}
}

// RepositoryCleared reports if the "repository" edge to the Repository entity was cleared.
func (m *MetricSnapshotMutation) RepositoryCleared() bool {
	return m.clearedrepository
}

// RepositoryID returns the "repository" edge ID in the mutation.
func (m *MetricSnapshotMutation) RepositoryID() (id string, exists bool) {
	if m.repository != nil {
		return *m.repository, true
	}
	return
}

// RepositoryIDs returns the "repository" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RepositoryID instead. It exists only for internal usage by the builders.
func (m *MetricSnapshotMutation) RepositoryIDs() (ids []string) {
	if id := m.repository; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRepository resets all changes to the "repository" edge.
func (m *MetricSnapshotMutation) ResetRepository() {
	m.repository = nil
	m.clearedrepository = false
}

// Where appends a list predicates to the MetricSnapshotMutation builder.
func (m *MetricSnapshotMutation) Where(ps ...predicate.MetricSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetricSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetricSnapshot).
func (m *MetricSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.repository != nil {
		fields = append(fields, metricsnapshot.FieldRepoID)
	}
	if m.stars != nil {
		fields = append(fields, metricsnapshot.FieldStars)
	}
	if m.forks != nil {
		fields = append(fields, metricsnapshot.FieldForks)
	}
	if m.open_issues != nil {
		fields = append(fields, metricsnapshot.FieldOpenIssues)
	}
	if m.watchers != nil {
		fields = append(fields, metricsnapshot.FieldWatchers)
	}
	if m.contributors != nil {
		fields = append(fields, metricsnapshot.FieldContributors)
	}
	if m.commits_count != nil {
		fields = append(fields, metricsnapshot.FieldCommitsCount)
	}
	if m.recorded_at != nil {
		fields = append(fields, metricsnapshot.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metricsnapshot.FieldRepoID:
		return m.RepoID()
	case metricsnapshot.FieldStars:
		return m.Stars()
	case metricsnapshot.FieldForks:
		return m.Forks()
	case metricsnapshot.FieldOpenIssues:
		return m.OpenIssues()
	case metricsnapshot.FieldWatchers:
		return m.Watchers()
	case metricsnapshot.FieldContributors:
		return m.Contributors()
	case metricsnapshot.FieldCommitsCount:
		return m.CommitsCount()
	case metricsnapshot.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metricsnapshot.FieldRepoID:
		return m.OldRepoID(ctx)
	case metricsnapshot.FieldStars:
		return m.OldStars(ctx)
	case metricsnapshot.FieldForks:
		return m.OldForks(ctx)
	case metricsnapshot.FieldOpenIssues:
		return m.OldOpenIssues(ctx)
	case metricsnapshot.FieldWatchers:
		return m.OldWatchers(ctx)
	case metricsnapshot.FieldContributors:
		return m.OldContributors(ctx)
	case metricsnapshot.FieldCommitsCount:
		return m.OldCommitsCount(ctx)
	case metricsnapshot.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MetricSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metricsnapshot.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case metricsnapshot.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStars(v)
		return nil
	case metricsnapshot.FieldForks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForks(v)
		return nil
	case metricsnapshot.FieldOpenIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenIssues(v)
		return nil
	case metricsnapshot.FieldWatchers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWatchers(v)
		return nil
	case metricsnapshot.FieldContributors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributors(v)
		return nil
	case metricsnapshot.FieldCommitsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitsCount(v)
		return nil
	case metricsnapshot.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MetricSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addstars != nil {
		fields = append(fields, metricsnapshot.FieldStars)
	}
	if m.addforks != nil {
		fields = append(fields, metricsnapshot.FieldForks)
	}
	if m.addopen_issues != nil {
		fields = append(fields, metricsnapshot.FieldOpenIssues)
	}
	if m.addwatchers != nil {
		fields = append(fields, metricsnapshot.FieldWatchers)
	}
	if m.addcontributors != nil {
		fields = append(fields, metricsnapshot.FieldContributors)
	}
	if m.addcommits_count != nil {
		fields = append(fields, metricsnapshot.FieldCommitsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metricsnapshot.FieldStars:
		return m.AddedStars()
	case metricsnapshot.FieldForks:
		return m.AddedForks()
	case metricsnapshot.FieldOpenIssues:
		return m.AddedOpenIssues()
	case metricsnapshot.FieldWatchers:
		return m.AddedWatchers()
	case metricsnapshot.FieldContributors:
		return m.AddedContributors()
	case metricsnapshot.FieldCommitsCount:
		return m.AddedCommitsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metricsnapshot.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStars(v)
		return nil
	case metricsnapshot.FieldForks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddForks(v)
		return nil
	case metricsnapshot.FieldOpenIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpenIssues(v)
		return nil
	case metricsnapshot.FieldWatchers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWatchers(v)
		return nil
	case metricsnapshot.FieldContributors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributors(v)
		return nil
	case metricsnapshot.FieldCommitsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommitsCount(v)
		return nil
	}
	return fmt.Errorf("unknown MetricSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(metricsnapshot.FieldContributors) {
		fields = append(fields, metricsnapshot.FieldContributors)
	}
	if m.FieldCleared(metricsnapshot.FieldCommitsCount) {
		fields = append(fields, metricsnapshot.FieldCommitsCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricSnapshotMutation) ClearField(name string) error {
	switch name {
	case metricsnapshot.FieldContributors:
		m.ClearContributors()
		return nil
	case metricsnapshot.FieldCommitsCount:
		m.ClearCommitsCount()
		return nil
	}
	return fmt.Errorf("unknown MetricSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricSnapshotMutation) ResetField(name string) error {
	switch name {
	case metricsnapshot.FieldRepoID:
		m.ResetRepoID()
		return nil
	case metricsnapshot.FieldStars:
		m.ResetStars()
		return nil
	case metricsnapshot.FieldForks:
		m.ResetForks()
		return nil
	case metricsnapshot.FieldOpenIssues:
		m.ResetOpenIssues()
		return nil
	case metricsnapshot.FieldWatchers:
		m.ResetWatchers()
		return nil
	case metricsnapshot.FieldContributors:
		m.ResetContributors()
		return nil
	case metricsnapshot.FieldCommitsCount:
		m.ResetCommitsCount()
		return nil
	case metricsnapshot.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown MetricSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.repository != nil {
		edges = append(edges, metricsnapshot.EdgeRepository)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case metricsnapshot.EdgeRepository:
		if id := m.repository; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrepository {
		edges = append(edges, metricsnapshot.EdgeRepository)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case metricsnapshot.EdgeRepository:
		return m.clearedrepository
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case metricsnapshot.EdgeRepository:
		m.ClearRepository()
		return nil
	}
	return fmt.Errorf("unknown MetricSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case metricsnapshot.EdgeRepository:
		m.ResetRepository()
		return nil
	}
	return fmt.Errorf("unknown MetricSnapshot edge %s", name)
}

// RepositoryMutation represents an operation that mutates the Repository nodes in the graph.
type RepositoryMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	owner                  *string
	name                   *string
	full_name              *string
	description            *string
	stars                  *int
	addstars               *int
	forks                  *int
	addforks               *int
	open_issues            *int
	addopen_issues         *int
	language               *string
	topics                 *[]string
	appendtopics           []string
	created_at             *time.Time
	updated_at             *time.Time
	pushed_at              *time.Time
	is_archived            *bool
	is_fork                *bool
	html_url               *string
	default_branch         *string
	discovered_at          *time.Time
	clearedFields          map[string]struct{}
	snapshots              map[string]struct{}
	removedsnapshots       map[string]struct{}
	clearedsnapshots       bool
	tier_assignment        *string
	clearedtier_assignment bool
	analyses               map[string]struct{}
	removedanalyses        map[string]struct{}
	clearedanalyses        bool
	alerts                 map[string]struct{}
	removedalerts          map[string]struct{}
	clearedalerts          bool
	contributors           map[string]struct{}
	removedcontributors    map[string]struct{}
	clearedcontributors    bool
	done                   bool
	oldValue               func(context.Context) (*Repository, error)
	predicates             []predicate.Repository
}

var _ ent.Mutation = (*RepositoryMutation)(nil)

// repositoryOption allows management of the mutation configuration using functional options.
type repositoryOption func(*RepositoryMutation)

// newRepositoryMutation creates new mutation for the Repository entity.
func newRepositoryMutation(c config, op Op, opts ...repositoryOption) *RepositoryMutation {
	m := &RepositoryMutation{
		config:        c,
		op:            op,
		typ:           TypeRepository,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepositoryID sets the ID field of the mutation.
func withRepositoryID(id string) repositoryOption {
	return func(m *RepositoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Repository
		)
		m.oldValue = func(ctx context.Context) (*Repository, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Repository.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepository sets the old Repository of the mutation.
func withRepository(node *Repository) repositoryOption {
	return func(m *RepositoryMutation) {
		m.oldValue = func(context.Context) (*Repository, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepositoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepositoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Repository entities.
func (m *RepositoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepositoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepositoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Repository.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwner sets the "owner" field.
func (m *RepositoryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *RepositoryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *RepositoryMutation) ResetOwner() {
	m.owner = nil
}

// SetName sets the "name" field.
func (m *RepositoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RepositoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RepositoryMutation) ResetName() {
	m.name = nil
}

// SetFullName sets the "full_name" field.
func (m *RepositoryMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *RepositoryMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *RepositoryMutation) ResetFullName() {
	m.full_name = nil
}

// SetDescription sets the "description" field.
func (m *RepositoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RepositoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RepositoryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[repository.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RepositoryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[repository.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RepositoryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, repository.FieldDescription)
}

// SetStars sets the "stars" field.
func (m *RepositoryMutation) SetStars(i int) {
	m.stars = &i
	m.addstars = nil
}

// Stars returns the value of the "stars" field in the mutation.
func (m *RepositoryMutation) Stars() (r int, exists bool) {
	v := m.stars
	if v == nil {
		return
	}
	return *v, true
}

// OldStars returns the old "stars" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStars: %w", err)
	}
	return oldValue.Stars, nil
}

// AddStars adds i to the "stars" field.
func (m *RepositoryMutation) AddStars(i int) {
	if m.addstars != nil {
		*m.addstars += i
	} else {
		m.addstars = &i
	}
}

// AddedStars returns the value that was added to the "stars" field in this mutation.
func (m *RepositoryMutation) AddedStars() (r int, exists bool) {
	v := m.addstars
	if v == nil {
		return
	}
	return *v, true
}

// ResetStars resets all changes to the "stars" field.
func (m *RepositoryMutation) ResetStars() {
	m.stars = nil
	m.addstars = nil
}

// SetForks sets the "forks" field.
func (m *RepositoryMutation) SetForks(i int) {
	m.forks = &i
	m.addforks = nil
}

// Forks returns the value of the "forks" field in the mutation.
func (m *RepositoryMutation) Forks() (r int, exists bool) {
	v := m.forks
	if v == nil {
		return
	}
	return *v, true
}

// OldForks returns the old "forks" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldForks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForks: %w", err)
	}
	return oldValue.Forks, nil
}

// AddForks adds i to the "forks" field.
func (m *RepositoryMutation) AddForks(i int) {
	if m.addforks != nil {
		*m.addforks += i
	} else {
		m.addforks = &i
	}
}

// AddedForks returns the value that was added to the "forks" field in this mutation.
func (m *RepositoryMutation) AddedForks() (r int, exists bool) {
	v := m.addforks
	if v == nil {
		return
	}
	return *v, true
}

// ResetForks resets all changes to the "forks" field.
func (m *RepositoryMutation) ResetForks() {
	m.forks = nil
	m.addforks = nil
}

// SetOpenIssues sets the "open_issues" field.
func (m *RepositoryMutation) SetOpenIssues(i int) {
	m.open_issues = &i
	m.addopen_issues = nil
}

// OpenIssues returns the value of the "open_issues" field in the mutation.
func (m *RepositoryMutation) OpenIssues() (r int, exists bool) {
	v := m.open_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenIssues returns the old "open_issues" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldOpenIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenIssues: %w", err)
	}
	return oldValue.OpenIssues, nil
}

// AddOpenIssues adds i to the "open_issues" field.
func (m *RepositoryMutation) AddOpenIssues(i int) {
	if m.addopen_issues != nil {
		*m.addopen_issues += i
	} else {
		m.addopen_issues = &i
	}
}

// AddedOpenIssues returns the value that was added to the "open_issues" field in this mutation.
func (m *RepositoryMutation) AddedOpenIssues() (r int, exists bool) {
	v := m.addopen_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpenIssues resets all changes to the "open_issues" field.
func (m *RepositoryMutation) ResetOpenIssues() {
	m.open_issues = nil
	m.addopen_issues = nil
}

// SetLanguage sets the "language" field.
func (m *RepositoryMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *RepositoryMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *RepositoryMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[repository.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *RepositoryMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[repository.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *RepositoryMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, repository.FieldLanguage)
}

// SetTopics sets the "topics" field.
func (m *RepositoryMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *RepositoryMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *RepositoryMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *RepositoryMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *RepositoryMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[repository.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *RepositoryMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[repository.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *RepositoryMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, repository.FieldTopics)
}

// SetCreatedAt sets the "created_at" field.
func (m *RepositoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RepositoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RepositoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RepositoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RepositoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RepositoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPushedAt sets the "pushed_at" field.
func (m *RepositoryMutation) SetPushedAt(t time.Time) {
	m.pushed_at = &t
}

// PushedAt returns the value of the "pushed_at" field in the mutation.
func (m *RepositoryMutation) PushedAt() (r time.Time, exists bool) {
	v := m.pushed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPushedAt returns the old "pushed_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldPushedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushedAt: %w", err)
	}
	return oldValue.PushedAt, nil
}

// ClearPushedAt clears the value of the "pushed_at" field.
func (m *RepositoryMutation) ClearPushedAt() {
	m.pushed_at = nil
	m.clearedFields[repository.FieldPushedAt] = struct{}{}
}

// PushedAtCleared returns if the "pushed_at" field was cleared in this mutation.
func (m *RepositoryMutation) PushedAtCleared() bool {
	_, ok := m.clearedFields[repository.FieldPushedAt]
	return ok
}

// ResetPushedAt resets all changes to the "pushed_at" field.
func (m *RepositoryMutation) ResetPushedAt() {
	m.pushed_at = nil
	delete(m.clearedFields, repository.FieldPushedAt)
}

// SetIsArchived sets the "is_archived" field.
func (m *RepositoryMutation) SetIsArchived(b bool) {
	m.is_archived = &b
}

// IsArchived returns the value of the "is_archived" field in the mutation.
func (m *RepositoryMutation) IsArchived() (r bool, exists bool) {
	v := m.is_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldIsArchived returns the old "is_archived" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldIsArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsArchived: %w", err)
	}
	return oldValue.IsArchived, nil
}

// ResetIsArchived resets all changes to the "is_archived" field.
func (m *RepositoryMutation) ResetIsArchived() {
	m.is_archived = nil
}

// SetIsFork sets the "is_fork" field.
func (m *RepositoryMutation) SetIsFork(b bool) {
	m.is_fork = &b
}

// IsFork returns the value of the "is_fork" field in the mutation.
func (m *RepositoryMutation) IsFork() (r bool, exists bool) {
	v := m.is_fork
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFork returns the old "is_fork" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldIsFork(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFork: %w", err)
	}
	return oldValue.IsFork, nil
}

// ResetIsFork resets all changes to the "is_fork" field.
func (m *RepositoryMutation) ResetIsFork() {
	m.is_fork = nil
}

// SetHTMLURL sets the "html_url" field.
func (m *RepositoryMutation) SetHTMLURL(s string) {
	m.html_url = &s
}

// HTMLURL returns the value of the "html_url" field in the mutation.
func (m *RepositoryMutation) HTMLURL() (r string, exists bool) {
	v := m.html_url
	if v == nil {
		return
	}
	return *v, true
}

// OldHTMLURL returns the old "html_url" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldHTMLURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTMLURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTMLURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTMLURL: %w", err)
	}
	return oldValue.HTMLURL, nil
}

// ClearHTMLURL clears the value of the "html_url" field.
func (m *RepositoryMutation) ClearHTMLURL() {
	m.html_url = nil
	m.clearedFields[repository.FieldHTMLURL] = struct{}{}
}

// HTMLURLCleared returns if the "html_url" field was cleared in this mutation.
func (m *RepositoryMutation) HTMLURLCleared() bool {
	_, ok := m.clearedFields[repository.FieldHTMLURL]
	return ok
}

// ResetHTMLURL resets all changes to the "html_url" field.
func (m *RepositoryMutation) ResetHTMLURL() {
	m.html_url = nil
	delete(m.clearedFields, repository.FieldHTMLURL)
}

// SetDefaultBranch sets the "default_branch" field.
func (m *RepositoryMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *RepositoryMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ClearDefaultBranch clears the value of the "default_branch" field.
func (m *RepositoryMutation) ClearDefaultBranch() {
	m.default_branch = nil
	m.clearedFields[repository.FieldDefaultBranch] = struct{}{}
}

// DefaultBranchCleared returns if the "default_branch" field was cleared in this mutation.
func (m *RepositoryMutation) DefaultBranchCleared() bool {
	_, ok := m.clearedFields[repository.FieldDefaultBranch]
	return ok
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *RepositoryMutation) ResetDefaultBranch() {
	m.default_branch = nil
	delete(m.clearedFields, repository.FieldDefaultBranch)
}

// SetDiscoveredAt sets the "discovered_at" field.
func (m *RepositoryMutation) SetDiscoveredAt(t time.Time) {
	m.discovered_at = &t
}

// DiscoveredAt returns the value of the "discovered_at" field in the mutation.
func (m *RepositoryMutation) DiscoveredAt() (r time.Time, exists bool) {
	v := m.discovered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveredAt returns the old "discovered_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldDiscoveredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveredAt: %w", err)
	}
	return oldValue.DiscoveredAt, nil
}

// ResetDiscoveredAt resets all changes to the "discovered_at" field.
func (m *RepositoryMutation) ResetDiscoveredAt() {
	m.discovered_at = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the MetricSnapshot entity by ids.
func (m *RepositoryMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the MetricSnapshot entity.
func (m *RepositoryMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the MetricSnapshot entity was cleared.
func (m *RepositoryMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the MetricSnapshot entity by IDs.
func (m *RepositoryMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the MetricSnapshot entity.
func (m *RepositoryMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *RepositoryMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *RepositoryMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// SetTierAssignmentID sets the "tier_assignment" edge to the TierAssignment entity by id.
func (m *RepositoryMutation) SetTierAssignmentID(id string) {
	m.tier_assignment = &id
}

// ClearTierAssignment clears the "tier_assignment" edge to the TierAssignment entity.
func (m *RepositoryMutation) ClearTierAssignment() {
	m.clearedtier_assignment = true
}

// TierAssignmentCleared reports if the "tier_assignment" edge to the TierAssignment entity was cleared.
func (m *RepositoryMutation) TierAssignmentCleared() bool {
	return m.clearedtier_assignment
}

// TierAssignmentID returns the "tier_assignment" edge ID in the mutation.
func (m *RepositoryMutation) TierAssignmentID() (id string, exists bool) {
	if m.tier_assignment != nil {
		return *m.tier_assignment, true
	}
	return
}

// TierAssignmentIDs returns the "tier_assignment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TierAssignmentID instead. It exists only for internal usage by the builders.
func (m *RepositoryMutation) TierAssignmentIDs() (ids []string) {
	if id := m.tier_assignment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTierAssignment resets all changes to the "tier_assignment" edge.
func (m *RepositoryMutation) ResetTierAssignment() {
	m.tier_assignment = nil
	m.clearedtier_assignment = false
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by ids.
func (m *RepositoryMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the Analysis entity.
func (m *RepositoryMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the Analysis entity was cleared.
func (m *RepositoryMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the Analysis entity by IDs.
func (m *RepositoryMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the Analysis entity.
func (m *RepositoryMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *RepositoryMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *RepositoryMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *RepositoryMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *RepositoryMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *RepositoryMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *RepositoryMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *RepositoryMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *RepositoryMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *RepositoryMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// AddContributorIDs adds the "contributors" edge to the Contributor entity by ids.
func (m *RepositoryMutation) AddContributorIDs(ids ...string) {
	if m.contributors == nil {
		m.contributors = make(map[string]struct{})
	}
	for i := range ids {
		m.contributors[ids[i]] = struct{}{}
	}
}

// ClearContributors clears the "contributors" edge to the Contributor entity.
func (m *RepositoryMutation) ClearContributors() {
	m.clearedcontributors = true
}

// ContributorsCleared reports if the "contributors" edge to the Contributor entity was cleared.
func (m *RepositoryMutation) ContributorsCleared() bool {
	return m.clearedcontributors
}

// RemoveContributorIDs removes the "contributors" edge to the Contributor entity by IDs.
func (m *RepositoryMutation) RemoveContributorIDs(ids ...string) {
	if m.removedcontributors == nil {
		m.removedcontributors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contributors, ids[i])
		m.removedcontributors[ids[i]] = struct{}{}
	}
}

// RemovedContributors returns the removed IDs of the "contributors" edge to the Contributor entity.
func (m *RepositoryMutation) RemovedContributorsIDs() (ids []string) {
	for id := range m.removedcontributors {
		ids = append(ids, id)
	}
	return
}

// ContributorsIDs returns the "contributors" edge IDs in the mutation.
func (m *RepositoryMutation) ContributorsIDs() (ids []string) {
	for id := range m.contributors {
		ids = append(ids, id)
	}
	return
}

// ResetContributors resets all changes to the "contributors" edge.
func (m *RepositoryMutation) ResetContributors() {
	m.contributors = nil
	m.clearedcontributors = false
	m.removedcontributors = nil
}

// Where appends a list predicates to the RepositoryMutation builder.
func (m *RepositoryMutation) Where(ps ...predicate.Repository) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepositoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepositoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Repository, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepositoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepositoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Repository).
func (m *RepositoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepositoryMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.owner != nil {
		fields = append(fields, repository.FieldOwner)
	}
	if m.name != nil {
		fields = append(fields, repository.FieldName)
	}
	if m.full_name != nil {
		fields = append(fields, repository.FieldFullName)
	}
	if m.description != nil {
		fields = append(fields, repository.FieldDescription)
	}
	if m.stars != nil {
		fields = append(fields, repository.FieldStars)
	}
	if m.forks != nil {
		fields = append(fields, repository.FieldForks)
	}
	if m.open_issues != nil {
		fields = append(fields, repository.FieldOpenIssues)
	}
	if m.language != nil {
		fields = append(fields, repository.FieldLanguage)
	}
	if m.topics != nil {
		fields = append(fields, repository.FieldTopics)
	}
	if m.created_at != nil {
		fields = append(fields, repository.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, repository.FieldUpdatedAt)
	}
	if m.pushed_at != nil {
		fields = append(fields, repository.FieldPushedAt)
	}
	if m.is_archived != nil {
		fields = append(fields, repository.FieldIsArchived)
	}
	if m.is_fork != nil {
		fields = append(fields, repository.FieldIsFork)
	}
	if m.html_url != nil {
		fields = append(fields, repository.FieldHTMLURL)
	}
	if m.default_branch != nil {
		fields = append(fields, repository.FieldDefaultBranch)
	}
	if m.discovered_at != nil {
		fields = append(fields, repository.FieldDiscoveredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepositoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldOwner:
		return m.Owner()
	case repository.FieldName:
		return m.Name()
	case repository.FieldFullName:
		return m.FullName()
	case repository.FieldDescription:
		return m.Description()
	case repository.FieldStars:
		return m.Stars()
	case repository.FieldForks:
		return m.Forks()
	case repository.FieldOpenIssues:
		return m.OpenIssues()
	case repository.FieldLanguage:
		return m.Language()
	case repository.FieldTopics:
		return m.Topics()
	case repository.FieldCreatedAt:
		return m.CreatedAt()
	case repository.FieldUpdatedAt:
		return m.UpdatedAt()
	case repository.FieldPushedAt:
		return m.PushedAt()
	case repository.FieldIsArchived:
		return m.IsArchived()
	case repository.FieldIsFork:
		return m.IsFork()
	case repository.FieldHTMLURL:
		return m.HTMLURL()
	case repository.FieldDefaultBranch:
		return m.DefaultBranch()
	case repository.FieldDiscoveredAt:
		return m.DiscoveredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepositoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repository.FieldOwner:
		return m.OldOwner(ctx)
	case repository.FieldName:
		return m.OldName(ctx)
	case repository.FieldFullName:
		return m.OldFullName(ctx)
	case repository.FieldDescription:
		return m.OldDescription(ctx)
	case repository.FieldStars:
		return m.OldStars(ctx)
	case repository.FieldForks:
		return m.OldForks(ctx)
	case repository.FieldOpenIssues:
		return m.OldOpenIssues(ctx)
	case repository.FieldLanguage:
		return m.OldLanguage(ctx)
	case repository.FieldTopics:
		return m.OldTopics(ctx)
	case repository.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case repository.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case repository.FieldPushedAt:
		return m.OldPushedAt(ctx)
	case repository.FieldIsArchived:
		return m.OldIsArchived(ctx)
	case repository.FieldIsFork:
		return m.OldIsFork(ctx)
	case repository.FieldHTMLURL:
		return m.OldHTMLURL(ctx)
	case repository.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case repository.FieldDiscoveredAt:
		return m.OldDiscoveredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Repository field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repository.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case repository.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case repository.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case repository.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case repository.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStars(v)
		return nil
	case repository.FieldForks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForks(v)
		return nil
	case repository.FieldOpenIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenIssues(v)
		return nil
	case repository.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case repository.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case repository.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case repository.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case repository.FieldPushedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushedAt(v)
		return nil
	case repository.FieldIsArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsArchived(v)
		return nil
	case repository.FieldIsFork:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFork(v)
		return nil
	case repository.FieldHTMLURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTMLURL(v)
		return nil
	case repository.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case repository.FieldDiscoveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepositoryMutation) AddedFields() []string {
	var fields []string
	if m.addstars != nil {
		fields = append(fields, repository.FieldStars)
	}
	if m.addforks != nil {
		fields = append(fields, repository.FieldForks)
	}
	if m.addopen_issues != nil {
		fields = append(fields, repository.FieldOpenIssues)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepositoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldStars:
		return m.AddedStars()
	case repository.FieldForks:
		return m.AddedForks()
	case repository.FieldOpenIssues:
		return m.AddedOpenIssues()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case repository.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStars(v)
		return nil
	case repository.FieldForks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddForks(v)
		return nil
	case repository.FieldOpenIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpenIssues(v)
		return nil
	}
	return fmt.Errorf("unknown Repository numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepositoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(repository.FieldDescription) {
		fields = append(fields, repository.FieldDescription)
	}
	if m.FieldCleared(repository.FieldLanguage) {
		fields = append(fields, repository.FieldLanguage)
	}
	if m.FieldCleared(repository.FieldTopics) {
		fields = append(fields, repository.FieldTopics)
	}
	if m.FieldCleared(repository.FieldPushedAt) {
		fields = append(fields, repository.FieldPushedAt)
	}
	if m.FieldCleared(repository.FieldHTMLURL) {
		fields = append(fields, repository.FieldHTMLURL)
	}
	if m.FieldCleared(repository.FieldDefaultBranch) {
		fields = append(fields, repository.FieldDefaultBranch)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepositoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepositoryMutation) ClearField(name string) error {
	switch name {
	case repository.FieldDescription:
		m.ClearDescription()
		return nil
	case repository.FieldLanguage:
		m.ClearLanguage()
		return nil
	case repository.FieldTopics:
		m.ClearTopics()
		return nil
	case repository.FieldPushedAt:
		m.ClearPushedAt()
		return nil
	case repository.FieldHTMLURL:
		m.ClearHTMLURL()
		return nil
	case repository.FieldDefaultBranch:
		m.ClearDefaultBranch()
		return nil
	}
	return fmt.Errorf("unknown Repository nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepositoryMutation) ResetField(name string) error {
	switch name {
	case repository.FieldOwner:
		m.ResetOwner()
		return nil
	case repository.FieldName:
		m.ResetName()
		return nil
	case repository.FieldFullName:
		m.ResetFullName()
		return nil
	case repository.FieldDescription:
		m.ResetDescription()
		return nil
	case repository.FieldStars:
		m.ResetStars()
		return nil
	case repository.FieldForks:
		m.ResetForks()
		return nil
	case repository.FieldOpenIssues:
		m.ResetOpenIssues()
		return nil
	case repository.FieldLanguage:
		m.ResetLanguage()
		return nil
	case repository.FieldTopics:
		m.ResetTopics()
		return nil
	case repository.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case repository.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case repository.FieldPushedAt:
		m.ResetPushedAt()
		return nil
	case repository.FieldIsArchived:
		m.ResetIsArchived()
		return nil
	case repository.FieldIsFork:
		m.ResetIsFork()
		return nil
	case repository.FieldHTMLURL:
		m.ResetHTMLURL()
		return nil
	case repository.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case repository.FieldDiscoveredAt:
		m.ResetDiscoveredAt()
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepositoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.snapshots != nil {
		edges = append(edges, repository.EdgeSnapshots)
	}
	if m.tier_assignment != nil {
		edges = append(edges, repository.EdgeTierAssignment)
	}
	if m.analyses != nil {
		edges = append(edges, repository.EdgeAnalyses)
	}
	if m.alerts != nil {
		edges = append(edges, repository.EdgeAlerts)
	}
	if m.contributors != nil {
		edges = append(edges, repository.EdgeContributors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepositoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case repository.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case repository.EdgeTierAssignment:
		if id := m.tier_assignment; id != nil {
			return []ent.Value{*id}
		}
	case repository.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	case repository.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case repository.EdgeContributors:
		ids := make([]ent.Value, 0, len(m.contributors))
		for id := range m.contributors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepositoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsnapshots != nil {
		edges = append(edges, repository.EdgeSnapshots)
	}
	if m.removedanalyses != nil {
		edges = append(edges, repository.EdgeAnalyses)
	}
	if m.removedalerts != nil {
		edges = append(edges, repository.EdgeAlerts)
	}
	if m.removedcontributors != nil {
		edges = append(edges, repository.EdgeContributors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepositoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case repository.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case repository.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	case repository.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	case repository.EdgeContributors:
		ids := make([]ent.Value, 0, len(m.removedcontributors))
		for id := range m.removedcontributors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepositoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsnapshots {
		edges = append(edges, repository.EdgeSnapshots)
	}
	if m.clearedtier_assignment {
		edges = append(edges, repository.EdgeTierAssignment)
	}
	if m.clearedanalyses {
		edges = append(edges, repository.EdgeAnalyses)
	}
	if m.clearedalerts {
		edges = append(edges, repository.EdgeAlerts)
	}
	if m.clearedcontributors {
		edges = append(edges, repository.EdgeContributors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepositoryMutation) EdgeCleared(name string) bool {
	switch name {
	case repository.EdgeSnapshots:
		return m.clearedsnapshots
	case repository.EdgeTierAssignment:
		return m.clearedtier_assignment
	case repository.EdgeAnalyses:
		return m.clearedanalyses
	case repository.EdgeAlerts:
		return m.clearedalerts
	case repository.EdgeContributors:
		return m.clearedcontributors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepositoryMutation) ClearEdge(name string) error {
	switch name {
	case repository.EdgeTierAssignment:
		m.ClearTierAssignment()
		return nil
	}
	return fmt.Errorf("unknown Repository unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepositoryMutation) ResetEdge(name string) error {
	switch name {
	case repository.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case repository.EdgeTierAssignment:
		m.ResetTierAssignment()
		return nil
	case repository.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	case repository.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case repository.EdgeContributors:
		m.ResetContributors()
		return nil
	}
	return fmt.Errorf("unknown Repository edge %s", name)
}

// SchedulerStateMutation represents an operation that mutates the SchedulerState nodes in the graph.
type SchedulerStateMutation struct {
	config
	op               Op
	typ              string
	id               *string
	next_tick        *time.Time
	last_cycle_type  *string
	last_cycle_at    *time.Time
	last_cycle_error *string
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SchedulerState, error)
	predicates       []predicate.SchedulerState
}

var _ ent.Mutation = (*SchedulerStateMutation)(nil)

// schedulerstateOption allows management of the mutation configuration using functional options.
type schedulerstateOption func(*SchedulerStateMutation)

// newSchedulerStateMutation creates new mutation for the SchedulerState entity.
func newSchedulerStateMutation(c config, op Op, opts ...schedulerstateOption) *SchedulerStateMutation {
	m := &SchedulerStateMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedulerState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchedulerStateID sets the ID field of the mutation.
func withSchedulerStateID(id string) schedulerstateOption {
	return func(m *SchedulerStateMutation) {
		var (
			err   error
			once  sync.Once
			value *SchedulerState
		)
		m.oldValue = func(ctx context.Context) (*SchedulerState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchedulerState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedulerState sets the old SchedulerState of the mutation.
func withSchedulerState(node *SchedulerState) schedulerstateOption {
	return func(m *SchedulerStateMutation) {
		m.oldValue = func(context.Context) (*SchedulerState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchedulerStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchedulerStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchedulerState entities.
func (m *SchedulerStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchedulerStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchedulerStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchedulerState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNextTick sets the "next_tick" field.
func (m *SchedulerStateMutation) SetNextTick(t time.Time) {
	m.next_tick = &t
}

// NextTick returns the value of the "next_tick" field in the mutation.
func (m *SchedulerStateMutation) NextTick() (r time.Time, exists bool) {
	v := m.next_tick
	if v == nil {
		return
	}
	return *v, true
}

// OldNextTick returns the old "next_tick" field's value of the SchedulerState entity.
// If the SchedulerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerStateMutation) OldNextTick(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextTick is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextTick requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextTick: %w", err)
	}
	return oldValue.NextTick, nil
}

// ResetNextTick resets all changes to the "next_tick" field.
func (m *SchedulerStateMutation) ResetNextTick() {
	m.next_tick = nil
}

// SetLastCycleType sets the "last_cycle_type" field.
func (m *SchedulerStateMutation) SetLastCycleType(s string) {
	m.last_cycle_type = &s
}

// LastCycleType returns the value of the "last_cycle_type" field in the mutation.
func (m *SchedulerStateMutation) LastCycleType() (r string, exists bool) {
	v := m.last_cycle_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCycleType returns the old "last_cycle_type" field's value of the SchedulerState entity.
// If the SchedulerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerStateMutation) OldLastCycleType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCycleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCycleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCycleType: %w", err)
	}
	return oldValue.LastCycleType, nil
}

// ClearLastCycleType clears the value of the "last_cycle_type" field.
func (m *SchedulerStateMutation) ClearLastCycleType() {
	m.last_cycle_type = nil
	m.clearedFields[schedulerstate.FieldLastCycleType] = struct{}{}
}

// LastCycleTypeCleared returns if the "last_cycle_type" field was cleared in this mutation.
func (m *SchedulerStateMutation) LastCycleTypeCleared() bool {
	_, ok := m.clearedFields[schedulerstate.FieldLastCycleType]
	return ok
}

// ResetLastCycleType resets all changes to the "last_cycle_type" field.
func (m *SchedulerStateMutation) ResetLastCycleType() {
	m.last_cycle_type = nil
	delete(m.clearedFields, schedulerstate.FieldLastCycleType)
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (m *SchedulerStateMutation) SetLastCycleAt(t time.Time) {
	m.last_cycle_at = &t
}

// LastCycleAt returns the value of the "last_cycle_at" field in the mutation.
func (m *SchedulerStateMutation) LastCycleAt() (r time.Time, exists bool) {
	v := m.last_cycle_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCycleAt returns the old "last_cycle_at" field's value of the SchedulerState entity.
// If the SchedulerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerStateMutation) OldLastCycleAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCycleAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCycleAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCycleAt: %w", err)
	}
	return oldValue.LastCycleAt, nil
}

// ClearLastCycleAt clears the value of the "last_cycle_at" field.
func (m *SchedulerStateMutation) ClearLastCycleAt() {
	m.last_cycle_at = nil
	m.clearedFields[schedulerstate.FieldLastCycleAt] = struct{}{}
}

// LastCycleAtCleared returns if the "last_cycle_at" field was cleared in this mutation.
func (m *SchedulerStateMutation) LastCycleAtCleared() bool {
	_, ok := m.clearedFields[schedulerstate.FieldLastCycleAt]
	return ok
}

// ResetLastCycleAt resets all changes to the "last_cycle_at" field.
func (m *SchedulerStateMutation) ResetLastCycleAt() {
	m.last_cycle_at = nil
	delete(m.clearedFields, schedulerstate.FieldLastCycleAt)
}

// SetLastCycleError sets the "last_cycle_error" field.
func (m *SchedulerStateMutation) SetLastCycleError(s string) {
	m.last_cycle_error = &s
}

// LastCycleError returns the value of the "last_cycle_error" field in the mutation.
func (m *SchedulerStateMutation) LastCycleError() (r string, exists bool) {
	v := m.last_cycle_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCycleError returns the old "last_cycle_error" field's value of the SchedulerState entity.
// If the SchedulerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerStateMutation) OldLastCycleError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCycleError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCycleError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCycleError: %w", err)
	}
	return oldValue.LastCycleError, nil
}

// ClearLastCycleError clears the value of the "last_cycle_error" field.
func (m *SchedulerStateMutation) ClearLastCycleError() {
	m.last_cycle_error = nil
	m.clearedFields[schedulerstate.FieldLastCycleError] = struct{}{}
}

// LastCycleErrorCleared returns if the "last_cycle_error" field was cleared in this mutation.
func (m *SchedulerStateMutation) LastCycleErrorCleared() bool {
	_, ok := m.clearedFields[schedulerstate.FieldLastCycleError]
	return ok
}

// ResetLastCycleError resets all changes to the "last_cycle_error" field.
func (m *SchedulerStateMutation) ResetLastCycleError() {
	m.last_cycle_error = nil
	delete(m.clearedFields, schedulerstate.FieldLastCycleError)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SchedulerStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SchedulerStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SchedulerState entity.
// If the SchedulerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchedulerStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SchedulerStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SchedulerStateMutation builder.
func (m *SchedulerStateMutation) Where(ps ...predicate.SchedulerState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchedulerStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchedulerStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchedulerState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchedulerStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchedulerStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchedulerState).
func (m *SchedulerStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchedulerStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.next_tick != nil {
		fields = append(fields, schedulerstate.FieldNextTick)
	}
	if m.last_cycle_type != nil {
		fields = append(fields, schedulerstate.FieldLastCycleType)
	}
	if m.last_cycle_at != nil {
		fields = append(fields, schedulerstate.FieldLastCycleAt)
	}
	if m.last_cycle_error != nil {
		fields = append(fields, schedulerstate.FieldLastCycleError)
	}
	if m.updated_at != nil {
		fields = append(fields, schedulerstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchedulerStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulerstate.FieldNextTick:
		return m.NextTick()
	case schedulerstate.FieldLastCycleType:
		return m.LastCycleType()
	case schedulerstate.FieldLastCycleAt:
		return m.LastCycleAt()
	case schedulerstate.FieldLastCycleError:
		return m.LastCycleError()
	case schedulerstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchedulerStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulerstate.FieldNextTick:
		return m.OldNextTick(ctx)
	case schedulerstate.FieldLastCycleType:
		return m.OldLastCycleType(ctx)
	case schedulerstate.FieldLastCycleAt:
		return m.OldLastCycleAt(ctx)
	case schedulerstate.FieldLastCycleError:
		return m.OldLastCycleError(ctx)
	case schedulerstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchedulerState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulerStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulerstate.FieldNextTick:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextTick(v)
		return nil
	case schedulerstate.FieldLastCycleType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCycleType(v)
		return nil
	case schedulerstate.FieldLastCycleAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCycleAt(v)
		return nil
	case schedulerstate.FieldLastCycleError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCycleError(v)
		return nil
	case schedulerstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchedulerState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchedulerStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchedulerStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchedulerStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SchedulerState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchedulerStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedulerstate.FieldLastCycleType) {
		fields = append(fields, schedulerstate.FieldLastCycleType)
	}
	if m.FieldCleared(schedulerstate.FieldLastCycleAt) {
		fields = append(fields, schedulerstate.FieldLastCycleAt)
	}
	if m.FieldCleared(schedulerstate.FieldLastCycleError) {
		fields = append(fields, schedulerstate.FieldLastCycleError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchedulerStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchedulerStateMutation) ClearField(name string) error {
	switch name {
	case schedulerstate.FieldLastCycleType:
		m.ClearLastCycleType()
		return nil
	case schedulerstate.FieldLastCycleAt:
		m.ClearLastCycleAt()
		return nil
	case schedulerstate.FieldLastCycleError:
		m.ClearLastCycleError()
		return nil
	}
	return fmt.Errorf("unknown SchedulerState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchedulerStateMutation) ResetField(name string) error {
	switch name {
	case schedulerstate.FieldNextTick:
		m.ResetNextTick()
		return nil
	case schedulerstate.FieldLastCycleType:
		m.ResetLastCycleType()
		return nil
	case schedulerstate.FieldLastCycleAt:
		m.ResetLastCycleAt()
		return nil
	case schedulerstate.FieldLastCycleError:
		m.ResetLastCycleError()
		return nil
	case schedulerstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SchedulerState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchedulerStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchedulerStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchedulerStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchedulerStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchedulerStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchedulerStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchedulerStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SchedulerState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchedulerStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SchedulerState edge %s", name)
}

// TierAssignmentMutation represents an operation that mutates the TierAssignment nodes in the graph.
type TierAssignmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tier                *int
	addtier             *int
	stars               *int
	addstars            *int
	growth_velocity     *float64
	addgrowth_velocity  *float64
	engagement_score    *float64
	addengagement_score *float64
	scan_priority       *float64
	addscan_priority    *float64
	last_deep_scan      *time.Time
	last_basic_scan     *time.Time
	next_scan_due       *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	repository          *string
	clearedrepository   bool
	done                bool
	oldValue            func(context.Context) (*TierAssignment, error)
	predicates          []predicate.TierAssignment
}

var _ ent.Mutation = (*TierAssignmentMutation)(nil)

// tierassignmentOption allows management of the mutation configuration using functional options.
type tierassignmentOption func(*TierAssignmentMutation)

// newTierAssignmentMutation creates new mutation for the TierAssignment entity.
func newTierAssignmentMutation(c config, op Op, opts ...tierassignmentOption) *TierAssignmentMutation {
	m := &TierAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTierAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTierAssignmentID sets the ID field of the mutation.
func withTierAssignmentID(id string) tierassignmentOption {
	return func(m *TierAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TierAssignment
		)
		m.oldValue = func(ctx context.Context) (*TierAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TierAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTierAssignment sets the old TierAssignment of the mutation.
func withTierAssignment(node *TierAssignment) tierassignmentOption {
	return func(m *TierAssignmentMutation) {
		m.oldValue = func(context.Context) (*TierAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TierAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TierAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TierAssignment entities.
func (m *TierAssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TierAssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TierAssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TierAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoID sets the "repo_id" field.
func (m *TierAssignmentMutation) SetRepoID(s string) {
	m.repository = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *TierAssignmentMutation) RepoID() (r string, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *TierAssignmentMutation) ResetRepoID() {
	m.repository = nil
}

// SetTier sets the "tier" field.
func (m *TierAssignmentMutation) SetTier(i int) {
	m.tier = &i
	m.addtier = nil
}

// Tier returns the value of the "tier" field in the mutation.
func (m *TierAssignmentMutation) Tier() (r int, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// AddTier adds i to the "tier" field.
func (m *TierAssignmentMutation) AddTier(i int) {
	if m.addtier != nil {
		*m.addtier += i
	} else {
		m.addtier = &i
	}
}

// AddedTier returns the value that was added to the "tier" field in this mutation.
func (m *TierAssignmentMutation) AddedTier() (r int, exists bool) {
	v := m.addtier
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier resets all changes to the "tier" field.
func (m *TierAssignmentMutation) ResetTier() {
	m.tier = nil
	m.addtier = nil
}

// SetStars sets the "stars" field.
func (m *TierAssignmentMutation) SetStars(i int) {
	m.stars = &i
	m.addstars = nil
}

// Stars returns the value of the "stars" field in the mutation.
func (m *TierAssignmentMutation) Stars() (r int, exists bool) {
	v := m.stars
	if v == nil {
		return
	}
	return *v, true
}

// OldStars returns the old "stars" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStars: %w", err)
	}
	return oldValue.Stars, nil
}

// AddStars adds i to the "stars" field.
func (m *TierAssignmentMutation) AddStars(i int) {
	if m.addstars != nil {
		*m.addstars += i
	} else {
		m.addstars = &i
	}
}

// AddedStars returns the value that was added to the "stars" field in this mutation.
func (m *TierAssignmentMutation) AddedStars() (r int, exists bool) {
	v := m.addstars
	if v == nil {
		return
	}
	return *v, true
}

// ResetStars resets all changes to the "stars" field.
func (m *TierAssignmentMutation) ResetStars() {
	m.stars = nil
	m.addstars = nil
}

// SetGrowthVelocity sets the "growth_velocity" field.
func (m *TierAssignmentMutation) SetGrowthVelocity(f float64) {
	m.growth_velocity = &f
	m.addgrowth_velocity = nil
}

// GrowthVelocity returns the value of the "growth_velocity" field in the mutation.
func (m *TierAssignmentMutation) GrowthVelocity() (r float64, exists bool) {
	v := m.growth_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldGrowthVelocity returns the old "growth_velocity" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldGrowthVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrowthVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrowthVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrowthVelocity: %w", err)
	}
	return oldValue.GrowthVelocity, nil
}

// AddGrowthVelocity adds f to the "growth_velocity" field.
func (m *TierAssignmentMutation) AddGrowthVelocity(f float64) {
	if m.addgrowth_velocity != nil {
		*m.addgrowth_velocity += f
	} else {
		m.addgrowth_velocity = &f
	}
}

// AddedGrowthVelocity returns the value that was added to the "growth_velocity" field in this mutation.
func (m *TierAssignmentMutation) AddedGrowthVelocity() (r float64, exists bool) {
	v := m.addgrowth_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrowthVelocity resets all changes to the "growth_velocity" field.
func (m *TierAssignmentMutation) ResetGrowthVelocity() {
	m.growth_velocity = nil
	m.addgrowth_velocity = nil
}

// SetEngagementScore sets the "engagement_score" field.
func (m *TierAssignmentMutation) SetEngagementScore(f float64) {
	m.engagement_score = &f
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *TierAssignmentMutation) EngagementScore() (r float64, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldEngagementScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds f to the "engagement_score" field.
func (m *TierAssignmentMutation) AddEngagementScore(f float64) {
	if m.addengagement_score != nil {
		*m.addengagement_score += f
	} else {
		m.addengagement_score = &f
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *TierAssignmentMutation) AddedEngagementScore() (r float64, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *TierAssignmentMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetScanPriority sets the "scan_priority" field.
func (m *TierAssignmentMutation) SetScanPriority(f float64) {
	m.scan_priority = &f
	m.addscan_priority = nil
}

// ScanPriority returns the value of the "scan_priority" field in the mutation.
func (m *TierAssignmentMutation) ScanPriority() (r float64, exists bool) {
	v := m.scan_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldScanPriority returns the old "scan_priority" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldScanPriority(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanPriority: %w", err)
	}
	return oldValue.ScanPriority, nil
}

// AddScanPriority adds f to the "scan_priority" field.
func (m *TierAssignmentMutation) AddScanPriority(f float64) {
	if m.addscan_priority != nil {
		*m.addscan_priority += f
	} else {
		m.addscan_priority = &f
	}
}

// AddedScanPriority returns the value that was added to the "scan_priority" field in this mutation.
func (m *TierAssignmentMutation) AddedScanPriority() (r float64, exists bool) {
	v := m.addscan_priority
	if v == nil {
		return
	}
	return *v, true
}

// ResetScanPriority resets all changes to the "scan_priority" field.
func (m *TierAssignmentMutation) ResetScanPriority() {
	m.scan_priority = nil
	m.addscan_priority = nil
}

// SetLastDeepScan sets the "last_deep_scan" field.
func (m *TierAssignmentMutation) SetLastDeepScan(t time.Time) {
	m.last_deep_scan = &t
}

// LastDeepScan returns the value of the "last_deep_scan" field in the mutation.
func (m *TierAssignmentMutation) LastDeepScan() (r time.Time, exists bool) {
	v := m.last_deep_scan
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDeepScan returns the old "last_deep_scan" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldLastDeepScan(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDeepScan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDeepScan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDeepScan: %w", err)
	}
	return oldValue.LastDeepScan, nil
}

// ClearLastDeepScan clears the value of the "last_deep_scan" field.
func (m *TierAssignmentMutation) ClearLastDeepScan() {
	m.last_deep_scan = nil
	m.clearedFields[tierassignment.FieldLastDeepScan] = struct{}{}
}

// LastDeepScanCleared returns if the "last_deep_scan" field was cleared in this mutation.
func (m *TierAssignmentMutation) LastDeepScanCleared() bool {
	_, ok := m.clearedFields[tierassignment.FieldLastDeepScan]
	return ok
}

// ResetLastDeepScan resets all changes to the "last_deep_scan" field.
func (m *TierAssignmentMutation) ResetLastDeepScan() {
	m.last_deep_scan = nil
	delete(m.clearedFields, tierassignment.FieldLastDeepScan)
}

// SetLastBasicScan sets the "last_basic_scan" field.
func (m *TierAssignmentMutation) SetLastBasicScan(t time.Time) {
	m.last_basic_scan = &t
}

// LastBasicScan returns the value of the "last_basic_scan" field in the mutation.
func (m *TierAssignmentMutation) LastBasicScan() (r time.Time, exists bool) {
	v := m.last_basic_scan
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBasicScan returns the old "last_basic_scan" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldLastBasicScan(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBasicScan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBasicScan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBasicScan: %w", err)
	}
	return oldValue.LastBasicScan, nil
}

// ClearLastBasicScan clears the value of the "last_basic_scan" field.
func (m *TierAssignmentMutation) ClearLastBasicScan() {
	m.last_basic_scan = nil
	m.clearedFields[tierassignment.FieldLastBasicScan] = struct{}{}
}

// LastBasicScanCleared returns if the "last_basic_scan" field was cleared in this mutation.
func (m *TierAssignmentMutation) LastBasicScanCleared() bool {
	_, ok := m.clearedFields[tierassignment.FieldLastBasicScan]
	return ok
}

// ResetLastBasicScan resets all changes to the "last_basic_scan" field.
func (m *TierAssignmentMutation) ResetLastBasicScan() {
	m.last_basic_scan = nil
	delete(m.clearedFields, tierassignment.FieldLastBasicScan)
}

// SetNextScanDue sets the "next_scan_due" field.
func (m *TierAssignmentMutation) SetNextScanDue(t time.Time) {
	m.next_scan_due = &t
}

// NextScanDue returns the value of the "next_scan_due" field in the mutation.
func (m *TierAssignmentMutation) NextScanDue() (r time.Time, exists bool) {
	v := m.next_scan_due
	if v == nil {
		return
	}
	return *v, true
}

// OldNextScanDue returns the old "next_scan_due" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldNextScanDue(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextScanDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextScanDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextScanDue: %w", err)
	}
	return oldValue.NextScanDue, nil
}

// ResetNextScanDue resets all changes to the "next_scan_due" field.
func (m *TierAssignmentMutation) ResetNextScanDue() {
	m.next_scan_due = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TierAssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TierAssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TierAssignment entity.
// If the TierAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierAssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TierAssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRepositoryID sets the "repository" edge to the Repository entity by id.
func (m *TierAssignmentMutation) SetRepositoryID(id string) {
	m.repository = &id
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (m *TierAssignmentMutation) ClearRepository() {
	m.clearedrepository = true
	m.clearedFields[tierassignment.FieldRepoID] = struct{}{}
}

// RepositoryCleared reports if the "repository" edge to the Repository entity was cleared.
func (m *TierAssignmentMutation) RepositoryCleared() bool {
	return m.clearedrepository
}

// RepositoryID returns the "repository" edge ID in the mutation.
func (m *TierAssignmentMutation) RepositoryID() (id string, exists bool) {
	if m.repository != nil {
		return *m.repository, true
	}
	return
}

// RepositoryIDs returns the "repository" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RepositoryID instead. It exists only for internal usage by the builders.
func (m *TierAssignmentMutation) RepositoryIDs() (ids []string) {
	if id := m.repository; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRepository resets all changes to the "repository" edge.
func (m *TierAssignmentMutation) ResetRepository() {
	m.repository = nil
	m.clearedrepository = false
}

// Where appends a list predicates to the TierAssignmentMutation builder.
func (m *TierAssignmentMutation) Where(ps ...predicate.TierAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TierAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TierAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TierAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TierAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TierAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TierAssignment).
func (m *TierAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TierAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.repository != nil {
		fields = append(fields, tierassignment.FieldRepoID)
	}
	if m.tier != nil {
		fields = append(fields, tierassignment.FieldTier)
	}
	if m.stars != nil {
		fields = append(fields, tierassignment.FieldStars)
	}
	if m.growth_velocity != nil {
		fields = append(fields, tierassignment.FieldGrowthVelocity)
	}
	if m.engagement_score != nil {
		fields = append(fields, tierassignment.FieldEngagementScore)
	}
	if m.scan_priority != nil {
		fields = append(fields, tierassignment.FieldScanPriority)
	}
	if m.last_deep_scan != nil {
		fields = append(fields, tierassignment.FieldLastDeepScan)
	}
	if m.last_basic_scan != nil {
		fields = append(fields, tierassignment.FieldLastBasicScan)
	}
	if m.next_scan_due != nil {
		fields = append(fields, tierassignment.FieldNextScanDue)
	}
	if m.updated_at != nil {
		fields = append(fields, tierassignment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TierAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tierassignment.FieldRepoID:
		return m.RepoID()
	case tierassignment.FieldTier:
		return m.Tier()
	case tierassignment.FieldStars:
		return m.Stars()
	case tierassignment.FieldGrowthVelocity:
		return m.GrowthVelocity()
	case tierassignment.FieldEngagementScore:
		return m.EngagementScore()
	case tierassignment.FieldScanPriority:
		return m.ScanPriority()
	case tierassignment.FieldLastDeepScan:
		return m.LastDeepScan()
	case tierassignment.FieldLastBasicScan:
		return m.LastBasicScan()
	case tierassignment.FieldNextScanDue:
		return m.NextScanDue()
	case tierassignment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TierAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tierassignment.FieldRepoID:
		return m.OldRepoID(ctx)
	case tierassignment.FieldTier:
		return m.OldTier(ctx)
	case tierassignment.FieldStars:
		return m.OldStars(ctx)
	case tierassignment.FieldGrowthVelocity:
		return m.OldGrowthVelocity(ctx)
	case tierassignment.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case tierassignment.FieldScanPriority:
		return m.OldScanPriority(ctx)
	case tierassignment.FieldLastDeepScan:
		return m.OldLastDeepScan(ctx)
	case tierassignment.FieldLastBasicScan:
		return m.OldLastBasicScan(ctx)
	case tierassignment.FieldNextScanDue:
		return m.OldNextScanDue(ctx)
	case tierassignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TierAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tierassignment.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case tierassignment.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case tierassignment.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStars(v)
		return nil
	case tierassignment.FieldGrowthVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrowthVelocity(v)
		return nil
	case tierassignment.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case tierassignment.FieldScanPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanPriority(v)
		return nil
	case tierassignment.FieldLastDeepScan:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDeepScan(v)
		return nil
	case tierassignment.FieldLastBasicScan:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBasicScan(v)
		return nil
	case tierassignment.FieldNextScanDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextScanDue(v)
		return nil
	case tierassignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TierAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TierAssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addtier != nil {
		fields = append(fields, tierassignment.FieldTier)
	}
	if m.addstars != nil {
		fields = append(fields, tierassignment.FieldStars)
	}
	if m.addgrowth_velocity != nil {
		fields = append(fields, tierassignment.FieldGrowthVelocity)
	}
	if m.addengagement_score != nil {
		fields = append(fields, tierassignment.FieldEngagementScore)
	}
	if m.addscan_priority != nil {
		fields = append(fields, tierassignment.FieldScanPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TierAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tierassignment.FieldTier:
		return m.AddedTier()
	case tierassignment.FieldStars:
		return m.AddedStars()
	case tierassignment.FieldGrowthVelocity:
		return m.AddedGrowthVelocity()
	case tierassignment.FieldEngagementScore:
		return m.AddedEngagementScore()
	case tierassignment.FieldScanPriority:
		return m.AddedScanPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tierassignment.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier(v)
		return nil
	case tierassignment.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStars(v)
		return nil
	case tierassignment.FieldGrowthVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrowthVelocity(v)
		return nil
	case tierassignment.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	case tierassignment.FieldScanPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScanPriority(v)
		return nil
	}
	return fmt.Errorf("unknown TierAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TierAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tierassignment.FieldLastDeepScan) {
		fields = append(fields, tierassignment.FieldLastDeepScan)
	}
	if m.FieldCleared(tierassignment.FieldLastBasicScan) {
		fields = append(fields, tierassignment.FieldLastBasicScan)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TierAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TierAssignmentMutation) ClearField(name string) error {
	switch name {
	case tierassignment.FieldLastDeepScan:
		m.ClearLastDeepScan()
		return nil
	case tierassignment.FieldLastBasicScan:
		m.ClearLastBasicScan()
		return nil
	}
	return fmt.Errorf("unknown TierAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TierAssignmentMutation) ResetField(name string) error {
	switch name {
	case tierassignment.FieldRepoID:
		m.ResetRepoID()
		return nil
	case tierassignment.FieldTier:
		m.ResetTier()
		return nil
	case tierassignment.FieldStars:
		m.ResetStars()
		return nil
	case tierassignment.FieldGrowthVelocity:
		m.ResetGrowthVelocity()
		return nil
	case tierassignment.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case tierassignment.FieldScanPriority:
		m.ResetScanPriority()
		return nil
	case tierassignment.FieldLastDeepScan:
		m.ResetLastDeepScan()
		return nil
	case tierassignment.FieldLastBasicScan:
		m.ResetLastBasicScan()
		return nil
	case tierassignment.FieldNextScanDue:
		m.ResetNextScanDue()
		return nil
	case tierassignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TierAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TierAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.repository != nil {
		edges = append(edges, tierassignment.EdgeRepository)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TierAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tierassignment.EdgeRepository:
		if id := m.repository; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TierAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TierAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TierAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrepository {
		edges = append(edges, tierassignment.EdgeRepository)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TierAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case tierassignment.EdgeRepository:
		return m.clearedrepository
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TierAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case tierassignment.EdgeRepository:
		m.ClearRepository()
		return nil
	}
	return fmt.Errorf("unknown TierAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TierAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case tierassignment.EdgeRepository:
		m.ResetRepository()
		return nil
	}
	return fmt.Errorf("unknown TierAssignment edge %s", name)
}
