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
	"github.com/barracuda-partners/backend/ent/admin"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/ent/conversion"
	"github.com/barracuda-partners/backend/ent/ftd"
	"github.com/barracuda-partners/backend/ent/postback"
	"github.com/barracuda-partners/backend/ent/predicate"
	"github.com/barracuda-partners/backend/ent/setting"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdmin      = "Admin"
	TypeContact    = "Contact"
	TypeConversion = "Conversion"
	TypeFTD        = "FTD"
	TypePostback   = "Postback"
	TypeSetting    = "Setting"
)

// AdminMutation represents an operation that mutates the Admin nodes in the graph.
type AdminMutation struct {
	config
	op            Op
	typ           string
	id            *int
	email         *string
	password_hash *string
	name          *string
	role          *string
	token_hash    *string
	last_login    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Admin, error)
	predicates    []predicate.Admin
}

var _ ent.Mutation = (*AdminMutation)(nil)

// adminOption allows management of the mutation configuration using functional options.
type adminOption func(*AdminMutation)

// newAdminMutation creates new mutation for the Admin entity.
func newAdminMutation(c config, op Op, opts ...adminOption) *AdminMutation {
	m := &AdminMutation{
		config:        c,
		op:            op,
		typ:           TypeAdmin,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminID sets the ID field of the mutation.
func withAdminID(id int) adminOption {
	return func(m *AdminMutation) {
		var (
			err   error
			once  sync.Once
			value *Admin
		)
		m.oldValue = func(ctx context.Context) (*Admin, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Admin.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdmin sets the old Admin of the mutation.
func withAdmin(node *Admin) adminOption {
	return func(m *AdminMutation) {
		m.oldValue = func(context.Context) (*Admin, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Admin.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AdminMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AdminMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AdminMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AdminMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AdminMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AdminMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *AdminMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AdminMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *AdminMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *AdminMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AdminMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AdminMutation) ResetRole() {
	m.role = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *AdminMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *AdminMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ClearTokenHash clears the value of the "token_hash" field.
func (m *AdminMutation) ClearTokenHash() {
	m.token_hash = nil
	m.clearedFields[admin.FieldTokenHash] = struct{}{}
}

// TokenHashCleared returns if the "token_hash" field was cleared in this mutation.
func (m *AdminMutation) TokenHashCleared() bool {
	_, ok := m.clearedFields[admin.FieldTokenHash]
	return ok
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *AdminMutation) ResetTokenHash() {
	m.token_hash = nil
	delete(m.clearedFields, admin.FieldTokenHash)
}

// SetLastLogin sets the "last_login" field.
func (m *AdminMutation) SetLastLogin(t time.Time) {
	m.last_login = &t
}

// LastLogin returns the value of the "last_login" field in the mutation.
func (m *AdminMutation) LastLogin() (r time.Time, exists bool) {
	v := m.last_login
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLogin returns the old "last_login" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldLastLogin(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLogin: %w", err)
	}
	return oldValue.LastLogin, nil
}

// ClearLastLogin clears the value of the "last_login" field.
func (m *AdminMutation) ClearLastLogin() {
	m.last_login = nil
	m.clearedFields[admin.FieldLastLogin] = struct{}{}
}

// LastLoginCleared returns if the "last_login" field was cleared in this mutation.
func (m *AdminMutation) LastLoginCleared() bool {
	_, ok := m.clearedFields[admin.FieldLastLogin]
	return ok
}

// ResetLastLogin resets all changes to the "last_login" field.
func (m *AdminMutation) ResetLastLogin() {
	m.last_login = nil
	delete(m.clearedFields, admin.FieldLastLogin)
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AdminMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AdminMutation builder.
func (m *AdminMutation) Where(ps ...predicate.Admin) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Admin, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Admin).
func (m *AdminMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.email != nil {
		fields = append(fields, admin.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, admin.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, admin.FieldName)
	}
	if m.role != nil {
		fields = append(fields, admin.FieldRole)
	}
	if m.token_hash != nil {
		fields = append(fields, admin.FieldTokenHash)
	}
	if m.last_login != nil {
		fields = append(fields, admin.FieldLastLogin)
	}
	if m.created_at != nil {
		fields = append(fields, admin.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admin.FieldEmail:
		return m.Email()
	case admin.FieldPasswordHash:
		return m.PasswordHash()
	case admin.FieldName:
		return m.Name()
	case admin.FieldRole:
		return m.Role()
	case admin.FieldTokenHash:
		return m.TokenHash()
	case admin.FieldLastLogin:
		return m.LastLogin()
	case admin.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admin.FieldEmail:
		return m.OldEmail(ctx)
	case admin.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case admin.FieldName:
		return m.OldName(ctx)
	case admin.FieldRole:
		return m.OldRole(ctx)
	case admin.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case admin.FieldLastLogin:
		return m.OldLastLogin(ctx)
	case admin.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Admin field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admin.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case admin.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case admin.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case admin.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case admin.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case admin.FieldLastLogin:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLogin(v)
		return nil
	case admin.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Admin field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Admin numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(admin.FieldTokenHash) {
		fields = append(fields, admin.FieldTokenHash)
	}
	if m.FieldCleared(admin.FieldLastLogin) {
		fields = append(fields, admin.FieldLastLogin)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminMutation) ClearField(name string) error {
	switch name {
	case admin.FieldTokenHash:
		m.ClearTokenHash()
		return nil
	case admin.FieldLastLogin:
		m.ClearLastLogin()
		return nil
	}
	return fmt.Errorf("unknown Admin nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminMutation) ResetField(name string) error {
	switch name {
	case admin.FieldEmail:
		m.ResetEmail()
		return nil
	case admin.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case admin.FieldName:
		m.ResetName()
		return nil
	case admin.FieldRole:
		m.ResetRole()
		return nil
	case admin.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case admin.FieldLastLogin:
		m.ResetLastLogin()
		return nil
	case admin.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Admin field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Admin unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Admin edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	email                *string
	name                 *string
	company              *string
	_type                *contact.Type
	status               *contact.Status
	affiliate_status     *contact.AffiliateStatus
	messenger            *string
	username             *string
	message              *string
	notes                *string
	affiliate_id         *string
	url_id               *string
	sub1                 *string
	sub2                 *string
	sub3                 *string
	campaign_id          *string
	tracking_source      *string
	tracking_link        *string
	affiliate_registered *bool
	affiliate_error      *string
	ftd                  *bool
	ftd_amount           *float64
	addftd_amount        *float64
	ftd_date             *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Contact, error)
	predicates           []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id int) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *ContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ContactMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *ContactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldName(ctx context.Context) (v string, err error) {
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

// ClearName clears the value of the "name" field.
func (m *ContactMutation) ClearName() {
	m.name = nil
	m.clearedFields[contact.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ContactMutation) NameCleared() bool {
	_, ok := m.clearedFields[contact.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ContactMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, contact.FieldName)
}

// SetCompany sets the "company" field.
func (m *ContactMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ContactMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ContactMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[contact.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ContactMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[contact.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ContactMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, contact.FieldCompany)
}

// SetType sets the "type" field.
func (m *ContactMutation) SetType(c contact.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *ContactMutation) GetType() (r contact.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldType(ctx context.Context) (v contact.Type, err error) {
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
func (m *ContactMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *ContactMutation) SetStatus(c contact.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContactMutation) Status() (r contact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldStatus(ctx context.Context) (v contact.Status, err error) {
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
func (m *ContactMutation) ResetStatus() {
	m.status = nil
}

// SetAffiliateStatus sets the "affiliate_status" field.
func (m *ContactMutation) SetAffiliateStatus(cs contact.AffiliateStatus) {
	m.affiliate_status = &cs
}

// AffiliateStatus returns the value of the "affiliate_status" field in the mutation.
func (m *ContactMutation) AffiliateStatus() (r contact.AffiliateStatus, exists bool) {
	v := m.affiliate_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateStatus returns the old "affiliate_status" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldAffiliateStatus(ctx context.Context) (v contact.AffiliateStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateStatus: %w", err)
	}
	return oldValue.AffiliateStatus, nil
}

// ResetAffiliateStatus resets all changes to the "affiliate_status" field.
func (m *ContactMutation) ResetAffiliateStatus() {
	m.affiliate_status = nil
}

// SetMessenger sets the "messenger" field.
func (m *ContactMutation) SetMessenger(s string) {
	m.messenger = &s
}

// Messenger returns the value of the "messenger" field in the mutation.
func (m *ContactMutation) Messenger() (r string, exists bool) {
	v := m.messenger
	if v == nil {
		return
	}
	return *v, true
}

// OldMessenger returns the old "messenger" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldMessenger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessenger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessenger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessenger: %w", err)
	}
	return oldValue.Messenger, nil
}

// ClearMessenger clears the value of the "messenger" field.
func (m *ContactMutation) ClearMessenger() {
	m.messenger = nil
	m.clearedFields[contact.FieldMessenger] = struct{}{}
}

// MessengerCleared returns if the "messenger" field was cleared in this mutation.
func (m *ContactMutation) MessengerCleared() bool {
	_, ok := m.clearedFields[contact.FieldMessenger]
	return ok
}

// ResetMessenger resets all changes to the "messenger" field.
func (m *ContactMutation) ResetMessenger() {
	m.messenger = nil
	delete(m.clearedFields, contact.FieldMessenger)
}

// SetUsername sets the "username" field.
func (m *ContactMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ContactMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *ContactMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[contact.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *ContactMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[contact.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *ContactMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, contact.FieldUsername)
}

// SetMessage sets the "message" field.
func (m *ContactMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ContactMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldMessage(ctx context.Context) (v string, err error) {
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

// ClearMessage clears the value of the "message" field.
func (m *ContactMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[contact.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *ContactMutation) MessageCleared() bool {
	_, ok := m.clearedFields[contact.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *ContactMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, contact.FieldMessage)
}

// SetNotes sets the "notes" field.
func (m *ContactMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ContactMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ContactMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[contact.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ContactMutation) NotesCleared() bool {
	_, ok := m.clearedFields[contact.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ContactMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, contact.FieldNotes)
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *ContactMutation) SetAffiliateID(s string) {
	m.affiliate_id = &s
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *ContactMutation) AffiliateID() (r string, exists bool) {
	v := m.affiliate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldAffiliateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (m *ContactMutation) ClearAffiliateID() {
	m.affiliate_id = nil
	m.clearedFields[contact.FieldAffiliateID] = struct{}{}
}

// AffiliateIDCleared returns if the "affiliate_id" field was cleared in this mutation.
func (m *ContactMutation) AffiliateIDCleared() bool {
	_, ok := m.clearedFields[contact.FieldAffiliateID]
	return ok
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *ContactMutation) ResetAffiliateID() {
	m.affiliate_id = nil
	delete(m.clearedFields, contact.FieldAffiliateID)
}

// SetURLID sets the "url_id" field.
func (m *ContactMutation) SetURLID(s string) {
	m.url_id = &s
}

// URLID returns the value of the "url_id" field in the mutation.
func (m *ContactMutation) URLID() (r string, exists bool) {
	v := m.url_id
	if v == nil {
		return
	}
	return *v, true
}

// OldURLID returns the old "url_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldURLID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLID: %w", err)
	}
	return oldValue.URLID, nil
}

// ClearURLID clears the value of the "url_id" field.
func (m *ContactMutation) ClearURLID() {
	m.url_id = nil
	m.clearedFields[contact.FieldURLID] = struct{}{}
}

// URLIDCleared returns if the "url_id" field was cleared in this mutation.
func (m *ContactMutation) URLIDCleared() bool {
	_, ok := m.clearedFields[contact.FieldURLID]
	return ok
}

// ResetURLID resets all changes to the "url_id" field.
func (m *ContactMutation) ResetURLID() {
	m.url_id = nil
	delete(m.clearedFields, contact.FieldURLID)
}

// SetSub1 sets the "sub1" field.
func (m *ContactMutation) SetSub1(s string) {
	m.sub1 = &s
}

// Sub1 returns the value of the "sub1" field in the mutation.
func (m *ContactMutation) Sub1() (r string, exists bool) {
	v := m.sub1
	if v == nil {
		return
	}
	return *v, true
}

// OldSub1 returns the old "sub1" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldSub1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub1: %w", err)
	}
	return oldValue.Sub1, nil
}

// ClearSub1 clears the value of the "sub1" field.
func (m *ContactMutation) ClearSub1() {
	m.sub1 = nil
	m.clearedFields[contact.FieldSub1] = struct{}{}
}

// Sub1Cleared returns if the "sub1" field was cleared in this mutation.
func (m *ContactMutation) Sub1Cleared() bool {
	_, ok := m.clearedFields[contact.FieldSub1]
	return ok
}

// ResetSub1 resets all changes to the "sub1" field.
func (m *ContactMutation) ResetSub1() {
	m.sub1 = nil
	delete(m.clearedFields, contact.FieldSub1)
}

// SetSub2 sets the "sub2" field.
func (m *ContactMutation) SetSub2(s string) {
	m.sub2 = &s
}

// Sub2 returns the value of the "sub2" field in the mutation.
func (m *ContactMutation) Sub2() (r string, exists bool) {
	v := m.sub2
	if v == nil {
		return
	}
	return *v, true
}

// OldSub2 returns the old "sub2" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldSub2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub2: %w", err)
	}
	return oldValue.Sub2, nil
}

// ClearSub2 clears the value of the "sub2" field.
func (m *ContactMutation) ClearSub2() {
	m.sub2 = nil
	m.clearedFields[contact.FieldSub2] = struct{}{}
}

// Sub2Cleared returns if the "sub2" field was cleared in this mutation.
func (m *ContactMutation) Sub2Cleared() bool {
	_, ok := m.clearedFields[contact.FieldSub2]
	return ok
}

// ResetSub2 resets all changes to the "sub2" field.
func (m *ContactMutation) ResetSub2() {
	m.sub2 = nil
	delete(m.clearedFields, contact.FieldSub2)
}

// SetSub3 sets the "sub3" field.
func (m *ContactMutation) SetSub3(s string) {
	m.sub3 = &s
}

// Sub3 returns the value of the "sub3" field in the mutation.
func (m *ContactMutation) Sub3() (r string, exists bool) {
	v := m.sub3
	if v == nil {
		return
	}
	return *v, true
}

// OldSub3 returns the old "sub3" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldSub3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub3: %w", err)
	}
	return oldValue.Sub3, nil
}

// ClearSub3 clears the value of the "sub3" field.
func (m *ContactMutation) ClearSub3() {
	m.sub3 = nil
	m.clearedFields[contact.FieldSub3] = struct{}{}
}

// Sub3Cleared returns if the "sub3" field was cleared in this mutation.
func (m *ContactMutation) Sub3Cleared() bool {
	_, ok := m.clearedFields[contact.FieldSub3]
	return ok
}

// ResetSub3 resets all changes to the "sub3" field.
func (m *ContactMutation) ResetSub3() {
	m.sub3 = nil
	delete(m.clearedFields, contact.FieldSub3)
}

// SetCampaignID sets the "campaign_id" field.
func (m *ContactMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *ContactMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (m *ContactMutation) ClearCampaignID() {
	m.campaign_id = nil
	m.clearedFields[contact.FieldCampaignID] = struct{}{}
}

// CampaignIDCleared returns if the "campaign_id" field was cleared in this mutation.
func (m *ContactMutation) CampaignIDCleared() bool {
	_, ok := m.clearedFields[contact.FieldCampaignID]
	return ok
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *ContactMutation) ResetCampaignID() {
	m.campaign_id = nil
	delete(m.clearedFields, contact.FieldCampaignID)
}

// SetTrackingSource sets the "tracking_source" field.
func (m *ContactMutation) SetTrackingSource(s string) {
	m.tracking_source = &s
}

// TrackingSource returns the value of the "tracking_source" field in the mutation.
func (m *ContactMutation) TrackingSource() (r string, exists bool) {
	v := m.tracking_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackingSource returns the old "tracking_source" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldTrackingSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackingSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackingSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackingSource: %w", err)
	}
	return oldValue.TrackingSource, nil
}

// ClearTrackingSource clears the value of the "tracking_source" field.
func (m *ContactMutation) ClearTrackingSource() {
	m.tracking_source = nil
	m.clearedFields[contact.FieldTrackingSource] = struct{}{}
}

// TrackingSourceCleared returns if the "tracking_source" field was cleared in this mutation.
func (m *ContactMutation) TrackingSourceCleared() bool {
	_, ok := m.clearedFields[contact.FieldTrackingSource]
	return ok
}

// ResetTrackingSource resets all changes to the "tracking_source" field.
func (m *ContactMutation) ResetTrackingSource() {
	m.tracking_source = nil
	delete(m.clearedFields, contact.FieldTrackingSource)
}

// SetTrackingLink sets the "tracking_link" field.
func (m *ContactMutation) SetTrackingLink(s string) {
	m.tracking_link = &s
}

// TrackingLink returns the value of the "tracking_link" field in the mutation.
func (m *ContactMutation) TrackingLink() (r string, exists bool) {
	v := m.tracking_link
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackingLink returns the old "tracking_link" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldTrackingLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackingLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackingLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackingLink: %w", err)
	}
	return oldValue.TrackingLink, nil
}

// ClearTrackingLink clears the value of the "tracking_link" field.
func (m *ContactMutation) ClearTrackingLink() {
	m.tracking_link = nil
	m.clearedFields[contact.FieldTrackingLink] = struct{}{}
}

// TrackingLinkCleared returns if the "tracking_link" field was cleared in this mutation.
func (m *ContactMutation) TrackingLinkCleared() bool {
	_, ok := m.clearedFields[contact.FieldTrackingLink]
	return ok
}

// ResetTrackingLink resets all changes to the "tracking_link" field.
func (m *ContactMutation) ResetTrackingLink() {
	m.tracking_link = nil
	delete(m.clearedFields, contact.FieldTrackingLink)
}

// SetAffiliateRegistered sets the "affiliate_registered" field.
func (m *ContactMutation) SetAffiliateRegistered(b bool) {
	m.affiliate_registered = &b
}

// AffiliateRegistered returns the value of the "affiliate_registered" field in the mutation.
func (m *ContactMutation) AffiliateRegistered() (r bool, exists bool) {
	v := m.affiliate_registered
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateRegistered returns the old "affiliate_registered" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldAffiliateRegistered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateRegistered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateRegistered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateRegistered: %w", err)
	}
	return oldValue.AffiliateRegistered, nil
}

// ResetAffiliateRegistered resets all changes to the "affiliate_registered" field.
func (m *ContactMutation) ResetAffiliateRegistered() {
	m.affiliate_registered = nil
}

// SetAffiliateError sets the "affiliate_error" field.
func (m *ContactMutation) SetAffiliateError(s string) {
	m.affiliate_error = &s
}

// AffiliateError returns the value of the "affiliate_error" field in the mutation.
func (m *ContactMutation) AffiliateError() (r string, exists bool) {
	v := m.affiliate_error
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateError returns the old "affiliate_error" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldAffiliateError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateError: %w", err)
	}
	return oldValue.AffiliateError, nil
}

// ClearAffiliateError clears the value of the "affiliate_error" field.
func (m *ContactMutation) ClearAffiliateError() {
	m.affiliate_error = nil
	m.clearedFields[contact.FieldAffiliateError] = struct{}{}
}

// AffiliateErrorCleared returns if the "affiliate_error" field was cleared in this mutation.
func (m *ContactMutation) AffiliateErrorCleared() bool {
	_, ok := m.clearedFields[contact.FieldAffiliateError]
	return ok
}

// ResetAffiliateError resets all changes to the "affiliate_error" field.
func (m *ContactMutation) ResetAffiliateError() {
	m.affiliate_error = nil
	delete(m.clearedFields, contact.FieldAffiliateError)
}

// SetFtd sets the "ftd" field.
func (m *ContactMutation) SetFtd(b bool) {
	m.ftd = &b
}

// Ftd returns the value of the "ftd" field in the mutation.
func (m *ContactMutation) Ftd() (r bool, exists bool) {
	v := m.ftd
	if v == nil {
		return
	}
	return *v, true
}

// OldFtd returns the old "ftd" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFtd(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFtd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFtd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFtd: %w", err)
	}
	return oldValue.Ftd, nil
}

// ResetFtd resets all changes to the "ftd" field.
func (m *ContactMutation) ResetFtd() {
	m.ftd = nil
}

// SetFtdAmount sets the "ftd_amount" field.
func (m *ContactMutation) SetFtdAmount(f float64) {
	m.ftd_amount = &f
	m.addftd_amount = nil
}

// FtdAmount returns the value of the "ftd_amount" field in the mutation.
func (m *ContactMutation) FtdAmount() (r float64, exists bool) {
	v := m.ftd_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldFtdAmount returns the old "ftd_amount" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFtdAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFtdAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFtdAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFtdAmount: %w", err)
	}
	return oldValue.FtdAmount, nil
}

// AddFtdAmount adds f to the "ftd_amount" field.
func (m *ContactMutation) AddFtdAmount(f float64) {
	if m.addftd_amount != nil {
		*m.addftd_amount += f
	} else {
		m.addftd_amount = &f
	}
}

// AddedFtdAmount returns the value that was added to the "ftd_amount" field in this mutation.
func (m *ContactMutation) AddedFtdAmount() (r float64, exists bool) {
	v := m.addftd_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearFtdAmount clears the value of the "ftd_amount" field.
func (m *ContactMutation) ClearFtdAmount() {
	m.ftd_amount = nil
	m.addftd_amount = nil
	m.clearedFields[contact.FieldFtdAmount] = struct{}{}
}

// FtdAmountCleared returns if the "ftd_amount" field was cleared in this mutation.
func (m *ContactMutation) FtdAmountCleared() bool {
	_, ok := m.clearedFields[contact.FieldFtdAmount]
	return ok
}

// ResetFtdAmount resets all changes to the "ftd_amount" field.
func (m *ContactMutation) ResetFtdAmount() {
	m.ftd_amount = nil
	m.addftd_amount = nil
	delete(m.clearedFields, contact.FieldFtdAmount)
}

// SetFtdDate sets the "ftd_date" field.
func (m *ContactMutation) SetFtdDate(t time.Time) {
	m.ftd_date = &t
}

// FtdDate returns the value of the "ftd_date" field in the mutation.
func (m *ContactMutation) FtdDate() (r time.Time, exists bool) {
	v := m.ftd_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFtdDate returns the old "ftd_date" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFtdDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFtdDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFtdDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFtdDate: %w", err)
	}
	return oldValue.FtdDate, nil
}

// ClearFtdDate clears the value of the "ftd_date" field.
func (m *ContactMutation) ClearFtdDate() {
	m.ftd_date = nil
	m.clearedFields[contact.FieldFtdDate] = struct{}{}
}

// FtdDateCleared returns if the "ftd_date" field was cleared in this mutation.
func (m *ContactMutation) FtdDateCleared() bool {
	_, ok := m.clearedFields[contact.FieldFtdDate]
	return ok
}

// ResetFtdDate resets all changes to the "ftd_date" field.
func (m *ContactMutation) ResetFtdDate() {
	m.ftd_date = nil
	delete(m.clearedFields, contact.FieldFtdDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.email != nil {
		fields = append(fields, contact.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, contact.FieldName)
	}
	if m.company != nil {
		fields = append(fields, contact.FieldCompany)
	}
	if m._type != nil {
		fields = append(fields, contact.FieldType)
	}
	if m.status != nil {
		fields = append(fields, contact.FieldStatus)
	}
	if m.affiliate_status != nil {
		fields = append(fields, contact.FieldAffiliateStatus)
	}
	if m.messenger != nil {
		fields = append(fields, contact.FieldMessenger)
	}
	if m.username != nil {
		fields = append(fields, contact.FieldUsername)
	}
	if m.message != nil {
		fields = append(fields, contact.FieldMessage)
	}
	if m.notes != nil {
		fields = append(fields, contact.FieldNotes)
	}
	if m.affiliate_id != nil {
		fields = append(fields, contact.FieldAffiliateID)
	}
	if m.url_id != nil {
		fields = append(fields, contact.FieldURLID)
	}
	if m.sub1 != nil {
		fields = append(fields, contact.FieldSub1)
	}
	if m.sub2 != nil {
		fields = append(fields, contact.FieldSub2)
	}
	if m.sub3 != nil {
		fields = append(fields, contact.FieldSub3)
	}
	if m.campaign_id != nil {
		fields = append(fields, contact.FieldCampaignID)
	}
	if m.tracking_source != nil {
		fields = append(fields, contact.FieldTrackingSource)
	}
	if m.tracking_link != nil {
		fields = append(fields, contact.FieldTrackingLink)
	}
	if m.affiliate_registered != nil {
		fields = append(fields, contact.FieldAffiliateRegistered)
	}
	if m.affiliate_error != nil {
		fields = append(fields, contact.FieldAffiliateError)
	}
	if m.ftd != nil {
		fields = append(fields, contact.FieldFtd)
	}
	if m.ftd_amount != nil {
		fields = append(fields, contact.FieldFtdAmount)
	}
	if m.ftd_date != nil {
		fields = append(fields, contact.FieldFtdDate)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldEmail:
		return m.Email()
	case contact.FieldName:
		return m.Name()
	case contact.FieldCompany:
		return m.Company()
	case contact.FieldType:
		return m.GetType()
	case contact.FieldStatus:
		return m.Status()
	case contact.FieldAffiliateStatus:
		return m.AffiliateStatus()
	case contact.FieldMessenger:
		return m.Messenger()
	case contact.FieldUsername:
		return m.Username()
	case contact.FieldMessage:
		return m.Message()
	case contact.FieldNotes:
		return m.Notes()
	case contact.FieldAffiliateID:
		return m.AffiliateID()
	case contact.FieldURLID:
		return m.URLID()
	case contact.FieldSub1:
		return m.Sub1()
	case contact.FieldSub2:
		return m.Sub2()
	case contact.FieldSub3:
		return m.Sub3()
	case contact.FieldCampaignID:
		return m.CampaignID()
	case contact.FieldTrackingSource:
		return m.TrackingSource()
	case contact.FieldTrackingLink:
		return m.TrackingLink()
	case contact.FieldAffiliateRegistered:
		return m.AffiliateRegistered()
	case contact.FieldAffiliateError:
		return m.AffiliateError()
	case contact.FieldFtd:
		return m.Ftd()
	case contact.FieldFtdAmount:
		return m.FtdAmount()
	case contact.FieldFtdDate:
		return m.FtdDate()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	case contact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldEmail:
		return m.OldEmail(ctx)
	case contact.FieldName:
		return m.OldName(ctx)
	case contact.FieldCompany:
		return m.OldCompany(ctx)
	case contact.FieldType:
		return m.OldType(ctx)
	case contact.FieldStatus:
		return m.OldStatus(ctx)
	case contact.FieldAffiliateStatus:
		return m.OldAffiliateStatus(ctx)
	case contact.FieldMessenger:
		return m.OldMessenger(ctx)
	case contact.FieldUsername:
		return m.OldUsername(ctx)
	case contact.FieldMessage:
		return m.OldMessage(ctx)
	case contact.FieldNotes:
		return m.OldNotes(ctx)
	case contact.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case contact.FieldURLID:
		return m.OldURLID(ctx)
	case contact.FieldSub1:
		return m.OldSub1(ctx)
	case contact.FieldSub2:
		return m.OldSub2(ctx)
	case contact.FieldSub3:
		return m.OldSub3(ctx)
	case contact.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case contact.FieldTrackingSource:
		return m.OldTrackingSource(ctx)
	case contact.FieldTrackingLink:
		return m.OldTrackingLink(ctx)
	case contact.FieldAffiliateRegistered:
		return m.OldAffiliateRegistered(ctx)
	case contact.FieldAffiliateError:
		return m.OldAffiliateError(ctx)
	case contact.FieldFtd:
		return m.OldFtd(ctx)
	case contact.FieldFtdAmount:
		return m.OldFtdAmount(ctx)
	case contact.FieldFtdDate:
		return m.OldFtdDate(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case contact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contact.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case contact.FieldType:
		v, ok := value.(contact.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case contact.FieldStatus:
		v, ok := value.(contact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contact.FieldAffiliateStatus:
		v, ok := value.(contact.AffiliateStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateStatus(v)
		return nil
	case contact.FieldMessenger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessenger(v)
		return nil
	case contact.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case contact.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case contact.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case contact.FieldAffiliateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case contact.FieldURLID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLID(v)
		return nil
	case contact.FieldSub1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub1(v)
		return nil
	case contact.FieldSub2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub2(v)
		return nil
	case contact.FieldSub3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub3(v)
		return nil
	case contact.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case contact.FieldTrackingSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackingSource(v)
		return nil
	case contact.FieldTrackingLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackingLink(v)
		return nil
	case contact.FieldAffiliateRegistered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateRegistered(v)
		return nil
	case contact.FieldAffiliateError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateError(v)
		return nil
	case contact.FieldFtd:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFtd(v)
		return nil
	case contact.FieldFtdAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFtdAmount(v)
		return nil
	case contact.FieldFtdDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFtdDate(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	var fields []string
	if m.addftd_amount != nil {
		fields = append(fields, contact.FieldFtdAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldFtdAmount:
		return m.AddedFtdAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contact.FieldFtdAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFtdAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldName) {
		fields = append(fields, contact.FieldName)
	}
	if m.FieldCleared(contact.FieldCompany) {
		fields = append(fields, contact.FieldCompany)
	}
	if m.FieldCleared(contact.FieldMessenger) {
		fields = append(fields, contact.FieldMessenger)
	}
	if m.FieldCleared(contact.FieldUsername) {
		fields = append(fields, contact.FieldUsername)
	}
	if m.FieldCleared(contact.FieldMessage) {
		fields = append(fields, contact.FieldMessage)
	}
	if m.FieldCleared(contact.FieldNotes) {
		fields = append(fields, contact.FieldNotes)
	}
	if m.FieldCleared(contact.FieldAffiliateID) {
		fields = append(fields, contact.FieldAffiliateID)
	}
	if m.FieldCleared(contact.FieldURLID) {
		fields = append(fields, contact.FieldURLID)
	}
	if m.FieldCleared(contact.FieldSub1) {
		fields = append(fields, contact.FieldSub1)
	}
	if m.FieldCleared(contact.FieldSub2) {
		fields = append(fields, contact.FieldSub2)
	}
	if m.FieldCleared(contact.FieldSub3) {
		fields = append(fields, contact.FieldSub3)
	}
	if m.FieldCleared(contact.FieldCampaignID) {
		fields = append(fields, contact.FieldCampaignID)
	}
	if m.FieldCleared(contact.FieldTrackingSource) {
		fields = append(fields, contact.FieldTrackingSource)
	}
	if m.FieldCleared(contact.FieldTrackingLink) {
		fields = append(fields, contact.FieldTrackingLink)
	}
	if m.FieldCleared(contact.FieldAffiliateError) {
		fields = append(fields, contact.FieldAffiliateError)
	}
	if m.FieldCleared(contact.FieldFtdAmount) {
		fields = append(fields, contact.FieldFtdAmount)
	}
	if m.FieldCleared(contact.FieldFtdDate) {
		fields = append(fields, contact.FieldFtdDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldName:
		m.ClearName()
		return nil
	case contact.FieldCompany:
		m.ClearCompany()
		return nil
	case contact.FieldMessenger:
		m.ClearMessenger()
		return nil
	case contact.FieldUsername:
		m.ClearUsername()
		return nil
	case contact.FieldMessage:
		m.ClearMessage()
		return nil
	case contact.FieldNotes:
		m.ClearNotes()
		return nil
	case contact.FieldAffiliateID:
		m.ClearAffiliateID()
		return nil
	case contact.FieldURLID:
		m.ClearURLID()
		return nil
	case contact.FieldSub1:
		m.ClearSub1()
		return nil
	case contact.FieldSub2:
		m.ClearSub2()
		return nil
	case contact.FieldSub3:
		m.ClearSub3()
		return nil
	case contact.FieldCampaignID:
		m.ClearCampaignID()
		return nil
	case contact.FieldTrackingSource:
		m.ClearTrackingSource()
		return nil
	case contact.FieldTrackingLink:
		m.ClearTrackingLink()
		return nil
	case contact.FieldAffiliateError:
		m.ClearAffiliateError()
		return nil
	case contact.FieldFtdAmount:
		m.ClearFtdAmount()
		return nil
	case contact.FieldFtdDate:
		m.ClearFtdDate()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldEmail:
		m.ResetEmail()
		return nil
	case contact.FieldName:
		m.ResetName()
		return nil
	case contact.FieldCompany:
		m.ResetCompany()
		return nil
	case contact.FieldType:
		m.ResetType()
		return nil
	case contact.FieldStatus:
		m.ResetStatus()
		return nil
	case contact.FieldAffiliateStatus:
		m.ResetAffiliateStatus()
		return nil
	case contact.FieldMessenger:
		m.ResetMessenger()
		return nil
	case contact.FieldUsername:
		m.ResetUsername()
		return nil
	case contact.FieldMessage:
		m.ResetMessage()
		return nil
	case contact.FieldNotes:
		m.ResetNotes()
		return nil
	case contact.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case contact.FieldURLID:
		m.ResetURLID()
		return nil
	case contact.FieldSub1:
		m.ResetSub1()
		return nil
	case contact.FieldSub2:
		m.ResetSub2()
		return nil
	case contact.FieldSub3:
		m.ResetSub3()
		return nil
	case contact.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case contact.FieldTrackingSource:
		m.ResetTrackingSource()
		return nil
	case contact.FieldTrackingLink:
		m.ResetTrackingLink()
		return nil
	case contact.FieldAffiliateRegistered:
		m.ResetAffiliateRegistered()
		return nil
	case contact.FieldAffiliateError:
		m.ResetAffiliateError()
		return nil
	case contact.FieldFtd:
		m.ResetFtd()
		return nil
	case contact.FieldFtdAmount:
		m.ResetFtdAmount()
		return nil
	case contact.FieldFtdDate:
		m.ResetFtdDate()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Contact edge %s", name)
}

// ConversionMutation represents an operation that mutates the Conversion nodes in the graph.
type ConversionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	click_id         *string
	goal_id          *string
	goal_type        *conversion.GoalType
	affiliate_id     *string
	offer_id         *string
	amount           *float64
	addamount        *float64
	sale_amount      *float64
	addsale_amount   *float64
	status           *conversion.Status
	sub1             *string
	sub2             *string
	sub3             *string
	sub4             *string
	sub5             *string
	user_agent       *string
	ip_address       *string
	country          *string
	region           *string
	source           *string
	platform         *string
	browser          *string
	os               *string
	os_version       *string
	manufacturer     *string
	device_type      *string
	is_test          *bool
	click_hash       *string
	advertiser_id    *string
	offer_url_id     *string
	affiliate_source *string
	metadata         *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Conversion, error)
	predicates       []predicate.Conversion
}

var _ ent.Mutation = (*ConversionMutation)(nil)

// conversionOption allows management of the mutation configuration using functional options.
type conversionOption func(*ConversionMutation)

// newConversionMutation creates new mutation for the Conversion entity.
func newConversionMutation(c config, op Op, opts ...conversionOption) *ConversionMutation {
	m := &ConversionMutation{
		config:        c,
		op:            op,
		typ:           TypeConversion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversionID sets the ID field of the mutation.
func withConversionID(id int) conversionOption {
	return func(m *ConversionMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversion
		)
		m.oldValue = func(ctx context.Context) (*Conversion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversion sets the old Conversion of the mutation.
func withConversion(node *Conversion) conversionOption {
	return func(m *ConversionMutation) {
		m.oldValue = func(context.Context) (*Conversion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClickID sets the "click_id" field.
func (m *ConversionMutation) SetClickID(s string) {
	m.click_id = &s
}

// ClickID returns the value of the "click_id" field in the mutation.
func (m *ConversionMutation) ClickID() (r string, exists bool) {
	v := m.click_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClickID returns the old "click_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldClickID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickID: %w", err)
	}
	return oldValue.ClickID, nil
}

// ResetClickID resets all changes to the "click_id" field.
func (m *ConversionMutation) ResetClickID() {
	m.click_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *ConversionMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *ConversionMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *ConversionMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetGoalType sets the "goal_type" field.
func (m *ConversionMutation) SetGoalType(ct conversion.GoalType) {
	m.goal_type = &ct
}

// GoalType returns the value of the "goal_type" field in the mutation.
func (m *ConversionMutation) GoalType() (r conversion.GoalType, exists bool) {
	v := m.goal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalType returns the old "goal_type" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldGoalType(ctx context.Context) (v conversion.GoalType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalType: %w", err)
	}
	return oldValue.GoalType, nil
}

// ResetGoalType resets all changes to the "goal_type" field.
func (m *ConversionMutation) ResetGoalType() {
	m.goal_type = nil
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *ConversionMutation) SetAffiliateID(s string) {
	m.affiliate_id = &s
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *ConversionMutation) AffiliateID() (r string, exists bool) {
	v := m.affiliate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldAffiliateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (m *ConversionMutation) ClearAffiliateID() {
	m.affiliate_id = nil
	m.clearedFields[conversion.FieldAffiliateID] = struct{}{}
}

// AffiliateIDCleared returns if the "affiliate_id" field was cleared in this mutation.
func (m *ConversionMutation) AffiliateIDCleared() bool {
	_, ok := m.clearedFields[conversion.FieldAffiliateID]
	return ok
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *ConversionMutation) ResetAffiliateID() {
	m.affiliate_id = nil
	delete(m.clearedFields, conversion.FieldAffiliateID)
}

// SetOfferID sets the "offer_id" field.
func (m *ConversionMutation) SetOfferID(s string) {
	m.offer_id = &s
}

// OfferID returns the value of the "offer_id" field in the mutation.
func (m *ConversionMutation) OfferID() (r string, exists bool) {
	v := m.offer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferID returns the old "offer_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldOfferID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferID: %w", err)
	}
	return oldValue.OfferID, nil
}

// ClearOfferID clears the value of the "offer_id" field.
func (m *ConversionMutation) ClearOfferID() {
	m.offer_id = nil
	m.clearedFields[conversion.FieldOfferID] = struct{}{}
}

// OfferIDCleared returns if the "offer_id" field was cleared in this mutation.
func (m *ConversionMutation) OfferIDCleared() bool {
	_, ok := m.clearedFields[conversion.FieldOfferID]
	return ok
}

// ResetOfferID resets all changes to the "offer_id" field.
func (m *ConversionMutation) ResetOfferID() {
	m.offer_id = nil
	delete(m.clearedFields, conversion.FieldOfferID)
}

// SetAmount sets the "amount" field.
func (m *ConversionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ConversionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ConversionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ConversionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ConversionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetSaleAmount sets the "sale_amount" field.
func (m *ConversionMutation) SetSaleAmount(f float64) {
	m.sale_amount = &f
	m.addsale_amount = nil
}

// SaleAmount returns the value of the "sale_amount" field in the mutation.
func (m *ConversionMutation) SaleAmount() (r float64, exists bool) {
	v := m.sale_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleAmount returns the old "sale_amount" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSaleAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleAmount: %w", err)
	}
	return oldValue.SaleAmount, nil
}

// AddSaleAmount adds f to the "sale_amount" field.
func (m *ConversionMutation) AddSaleAmount(f float64) {
	if m.addsale_amount != nil {
		*m.addsale_amount += f
	} else {
		m.addsale_amount = &f
	}
}

// AddedSaleAmount returns the value that was added to the "sale_amount" field in this mutation.
func (m *ConversionMutation) AddedSaleAmount() (r float64, exists bool) {
	v := m.addsale_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (m *ConversionMutation) ClearSaleAmount() {
	m.sale_amount = nil
	m.addsale_amount = nil
	m.clearedFields[conversion.FieldSaleAmount] = struct{}{}
}

// SaleAmountCleared returns if the "sale_amount" field was cleared in this mutation.
func (m *ConversionMutation) SaleAmountCleared() bool {
	_, ok := m.clearedFields[conversion.FieldSaleAmount]
	return ok
}

// ResetSaleAmount resets all changes to the "sale_amount" field.
func (m *ConversionMutation) ResetSaleAmount() {
	m.sale_amount = nil
	m.addsale_amount = nil
	delete(m.clearedFields, conversion.FieldSaleAmount)
}

// SetStatus sets the "status" field.
func (m *ConversionMutation) SetStatus(c conversion.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversionMutation) Status() (r conversion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldStatus(ctx context.Context) (v conversion.Status, err error) {
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
func (m *ConversionMutation) ResetStatus() {
	m.status = nil
}

// SetSub1 sets the "sub1" field.
func (m *ConversionMutation) SetSub1(s string) {
	m.sub1 = &s
}

// Sub1 returns the value of the "sub1" field in the mutation.
func (m *ConversionMutation) Sub1() (r string, exists bool) {
	v := m.sub1
	if v == nil {
		return
	}
	return *v, true
}

// OldSub1 returns the old "sub1" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSub1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub1: %w", err)
	}
	return oldValue.Sub1, nil
}

// ClearSub1 clears the value of the "sub1" field.
func (m *ConversionMutation) ClearSub1() {
	m.sub1 = nil
	m.clearedFields[conversion.FieldSub1] = struct{}{}
}

// Sub1Cleared returns if the "sub1" field was cleared in this mutation.
func (m *ConversionMutation) Sub1Cleared() bool {
	_, ok := m.clearedFields[conversion.FieldSub1]
	return ok
}

// ResetSub1 resets all changes to the "sub1" field.
func (m *ConversionMutation) ResetSub1() {
	m.sub1 = nil
	delete(m.clearedFields, conversion.FieldSub1)
}

// SetSub2 sets the "sub2" field.
func (m *ConversionMutation) SetSub2(s string) {
	m.sub2 = &s
}

// Sub2 returns the value of the "sub2" field in the mutation.
func (m *ConversionMutation) Sub2() (r string, exists bool) {
	v := m.sub2
	if v == nil {
		return
	}
	return *v, true
}

// OldSub2 returns the old "sub2" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSub2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub2: %w", err)
	}
	return oldValue.Sub2, nil
}

// ClearSub2 clears the value of the "sub2" field.
func (m *ConversionMutation) ClearSub2() {
	m.sub2 = nil
	m.clearedFields[conversion.FieldSub2] = struct{}{}
}

// Sub2Cleared returns if the "sub2" field was cleared in this mutation.
func (m *ConversionMutation) Sub2Cleared() bool {
	_, ok := m.clearedFields[conversion.FieldSub2]
	return ok
}

// ResetSub2 resets all changes to the "sub2" field.
func (m *ConversionMutation) ResetSub2() {
	m.sub2 = nil
	delete(m.clearedFields, conversion.FieldSub2)
}

// SetSub3 sets the "sub3" field.
func (m *ConversionMutation) SetSub3(s string) {
	m.sub3 = &s
}

// Sub3 returns the value of the "sub3" field in the mutation.
func (m *ConversionMutation) Sub3() (r string, exists bool) {
	v := m.sub3
	if v == nil {
		return
	}
	return *v, true
}

// OldSub3 returns the old "sub3" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSub3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub3: %w", err)
	}
	return oldValue.Sub3, nil
}

// ClearSub3 clears the value of the "sub3" field.
func (m *ConversionMutation) ClearSub3() {
	m.sub3 = nil
	m.clearedFields[conversion.FieldSub3] = struct{}{}
}

// Sub3Cleared returns if the "sub3" field was cleared in this mutation.
func (m *ConversionMutation) Sub3Cleared() bool {
	_, ok := m.clearedFields[conversion.FieldSub3]
	return ok
}

// ResetSub3 resets all changes to the "sub3" field.
func (m *ConversionMutation) ResetSub3() {
	m.sub3 = nil
	delete(m.clearedFields, conversion.FieldSub3)
}

// SetSub4 sets the "sub4" field.
func (m *ConversionMutation) SetSub4(s string) {
	m.sub4 = &s
}

// Sub4 returns the value of the "sub4" field in the mutation.
func (m *ConversionMutation) Sub4() (r string, exists bool) {
	v := m.sub4
	if v == nil {
		return
	}
	return *v, true
}

// OldSub4 returns the old "sub4" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSub4(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub4 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub4 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub4: %w", err)
	}
	return oldValue.Sub4, nil
}

// ClearSub4 clears the value of the "sub4" field.
func (m *ConversionMutation) ClearSub4() {
	m.sub4 = nil
	m.clearedFields[conversion.FieldSub4] = struct{}{}
}

// Sub4Cleared returns if the "sub4" field was cleared in this mutation.
func (m *ConversionMutation) Sub4Cleared() bool {
	_, ok := m.clearedFields[conversion.FieldSub4]
	return ok
}

// ResetSub4 resets all changes to the "sub4" field.
func (m *ConversionMutation) ResetSub4() {
	m.sub4 = nil
	delete(m.clearedFields, conversion.FieldSub4)
}

// SetSub5 sets the "sub5" field.
func (m *ConversionMutation) SetSub5(s string) {
	m.sub5 = &s
}

// Sub5 returns the value of the "sub5" field in the mutation.
func (m *ConversionMutation) Sub5() (r string, exists bool) {
	v := m.sub5
	if v == nil {
		return
	}
	return *v, true
}

// OldSub5 returns the old "sub5" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSub5(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub5 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub5 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub5: %w", err)
	}
	return oldValue.Sub5, nil
}

// ClearSub5 clears the value of the "sub5" field.
func (m *ConversionMutation) ClearSub5() {
	m.sub5 = nil
	m.clearedFields[conversion.FieldSub5] = struct{}{}
}

// Sub5Cleared returns if the "sub5" field was cleared in this mutation.
func (m *ConversionMutation) Sub5Cleared() bool {
	_, ok := m.clearedFields[conversion.FieldSub5]
	return ok
}

// ResetSub5 resets all changes to the "sub5" field.
func (m *ConversionMutation) ResetSub5() {
	m.sub5 = nil
	delete(m.clearedFields, conversion.FieldSub5)
}

// SetUserAgent sets the "user_agent" field.
func (m *ConversionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *ConversionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *ConversionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[conversion.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *ConversionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[conversion.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *ConversionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, conversion.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *ConversionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *ConversionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *ConversionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[conversion.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *ConversionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[conversion.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *ConversionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, conversion.FieldIPAddress)
}

// SetCountry sets the "country" field.
func (m *ConversionMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *ConversionMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *ConversionMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[conversion.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *ConversionMutation) CountryCleared() bool {
	_, ok := m.clearedFields[conversion.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *ConversionMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, conversion.FieldCountry)
}

// SetRegion sets the "region" field.
func (m *ConversionMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ConversionMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *ConversionMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[conversion.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *ConversionMutation) RegionCleared() bool {
	_, ok := m.clearedFields[conversion.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *ConversionMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, conversion.FieldRegion)
}

// SetSource sets the "source" field.
func (m *ConversionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ConversionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *ConversionMutation) ClearSource() {
	m.source = nil
	m.clearedFields[conversion.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *ConversionMutation) SourceCleared() bool {
	_, ok := m.clearedFields[conversion.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *ConversionMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, conversion.FieldSource)
}

// SetPlatform sets the "platform" field.
func (m *ConversionMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *ConversionMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ClearPlatform clears the value of the "platform" field.
func (m *ConversionMutation) ClearPlatform() {
	m.platform = nil
	m.clearedFields[conversion.FieldPlatform] = struct{}{}
}

// PlatformCleared returns if the "platform" field was cleared in this mutation.
func (m *ConversionMutation) PlatformCleared() bool {
	_, ok := m.clearedFields[conversion.FieldPlatform]
	return ok
}

// ResetPlatform resets all changes to the "platform" field.
func (m *ConversionMutation) ResetPlatform() {
	m.platform = nil
	delete(m.clearedFields, conversion.FieldPlatform)
}

// SetBrowser sets the "browser" field.
func (m *ConversionMutation) SetBrowser(s string) {
	m.browser = &s
}

// Browser returns the value of the "browser" field in the mutation.
func (m *ConversionMutation) Browser() (r string, exists bool) {
	v := m.browser
	if v == nil {
		return
	}
	return *v, true
}

// OldBrowser returns the old "browser" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldBrowser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrowser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrowser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrowser: %w", err)
	}
	return oldValue.Browser, nil
}

// ClearBrowser clears the value of the "browser" field.
func (m *ConversionMutation) ClearBrowser() {
	m.browser = nil
	m.clearedFields[conversion.FieldBrowser] = struct{}{}
}

// BrowserCleared returns if the "browser" field was cleared in this mutation.
func (m *ConversionMutation) BrowserCleared() bool {
	_, ok := m.clearedFields[conversion.FieldBrowser]
	return ok
}

// ResetBrowser resets all changes to the "browser" field.
func (m *ConversionMutation) ResetBrowser() {
	m.browser = nil
	delete(m.clearedFields, conversion.FieldBrowser)
}

// SetOs sets the "os" field.
func (m *ConversionMutation) SetOs(s string) {
	m.os = &s
}

// Os returns the value of the "os" field in the mutation.
func (m *ConversionMutation) Os() (r string, exists bool) {
	v := m.os
	if v == nil {
		return
	}
	return *v, true
}

// OldOs returns the old "os" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldOs(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOs: %w", err)
	}
	return oldValue.Os, nil
}

// ClearOs clears the value of the "os" field.
func (m *ConversionMutation) ClearOs() {
	m.os = nil
	m.clearedFields[conversion.FieldOs] = struct{}{}
}

// OsCleared returns if the "os" field was cleared in this mutation.
func (m *ConversionMutation) OsCleared() bool {
	_, ok := m.clearedFields[conversion.FieldOs]
	return ok
}

// ResetOs resets all changes to the "os" field.
func (m *ConversionMutation) ResetOs() {
	m.os = nil
	delete(m.clearedFields, conversion.FieldOs)
}

// SetOsVersion sets the "os_version" field.
func (m *ConversionMutation) SetOsVersion(s string) {
	m.os_version = &s
}

// OsVersion returns the value of the "os_version" field in the mutation.
func (m *ConversionMutation) OsVersion() (r string, exists bool) {
	v := m.os_version
	if v == nil {
		return
	}
	return *v, true
}

// OldOsVersion returns the old "os_version" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldOsVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOsVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOsVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOsVersion: %w", err)
	}
	return oldValue.OsVersion, nil
}

// ClearOsVersion clears the value of the "os_version" field.
func (m *ConversionMutation) ClearOsVersion() {
	m.os_version = nil
	m.clearedFields[conversion.FieldOsVersion] = struct{}{}
}

// OsVersionCleared returns if the "os_version" field was cleared in this mutation.
func (m *ConversionMutation) OsVersionCleared() bool {
	_, ok := m.clearedFields[conversion.FieldOsVersion]
	return ok
}

// ResetOsVersion resets all changes to the "os_version" field.
func (m *ConversionMutation) ResetOsVersion() {
	m.os_version = nil
	delete(m.clearedFields, conversion.FieldOsVersion)
}

// SetManufacturer sets the "manufacturer" field.
func (m *ConversionMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *ConversionMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldManufacturer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *ConversionMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[conversion.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *ConversionMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[conversion.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *ConversionMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, conversion.FieldManufacturer)
}

// SetDeviceType sets the "device_type" field.
func (m *ConversionMutation) SetDeviceType(s string) {
	m.device_type = &s
}

// DeviceType returns the value of the "device_type" field in the mutation.
func (m *ConversionMutation) DeviceType() (r string, exists bool) {
	v := m.device_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceType returns the old "device_type" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldDeviceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceType: %w", err)
	}
	return oldValue.DeviceType, nil
}

// ClearDeviceType clears the value of the "device_type" field.
func (m *ConversionMutation) ClearDeviceType() {
	m.device_type = nil
	m.clearedFields[conversion.FieldDeviceType] = struct{}{}
}

// DeviceTypeCleared returns if the "device_type" field was cleared in this mutation.
func (m *ConversionMutation) DeviceTypeCleared() bool {
	_, ok := m.clearedFields[conversion.FieldDeviceType]
	return ok
}

// ResetDeviceType resets all changes to the "device_type" field.
func (m *ConversionMutation) ResetDeviceType() {
	m.device_type = nil
	delete(m.clearedFields, conversion.FieldDeviceType)
}

// SetIsTest sets the "is_test" field.
func (m *ConversionMutation) SetIsTest(b bool) {
	m.is_test = &b
}

// IsTest returns the value of the "is_test" field in the mutation.
func (m *ConversionMutation) IsTest() (r bool, exists bool) {
	v := m.is_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTest returns the old "is_test" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldIsTest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTest: %w", err)
	}
	return oldValue.IsTest, nil
}

// ResetIsTest resets all changes to the "is_test" field.
func (m *ConversionMutation) ResetIsTest() {
	m.is_test = nil
}

// SetClickHash sets the "click_hash" field.
func (m *ConversionMutation) SetClickHash(s string) {
	m.click_hash = &s
}

// ClickHash returns the value of the "click_hash" field in the mutation.
func (m *ConversionMutation) ClickHash() (r string, exists bool) {
	v := m.click_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldClickHash returns the old "click_hash" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldClickHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickHash: %w", err)
	}
	return oldValue.ClickHash, nil
}

// ClearClickHash clears the value of the "click_hash" field.
func (m *ConversionMutation) ClearClickHash() {
	m.click_hash = nil
	m.clearedFields[conversion.FieldClickHash] = struct{}{}
}

// ClickHashCleared returns if the "click_hash" field was cleared in this mutation.
func (m *ConversionMutation) ClickHashCleared() bool {
	_, ok := m.clearedFields[conversion.FieldClickHash]
	return ok
}

// ResetClickHash resets all changes to the "click_hash" field.
func (m *ConversionMutation) ResetClickHash() {
	m.click_hash = nil
	delete(m.clearedFields, conversion.FieldClickHash)
}

// SetAdvertiserID sets the "advertiser_id" field.
func (m *ConversionMutation) SetAdvertiserID(s string) {
	m.advertiser_id = &s
}

// AdvertiserID returns the value of the "advertiser_id" field in the mutation.
func (m *ConversionMutation) AdvertiserID() (r string, exists bool) {
	v := m.advertiser_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdvertiserID returns the old "advertiser_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldAdvertiserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdvertiserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdvertiserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdvertiserID: %w", err)
	}
	return oldValue.AdvertiserID, nil
}

// ClearAdvertiserID clears the value of the "advertiser_id" field.
func (m *ConversionMutation) ClearAdvertiserID() {
	m.advertiser_id = nil
	m.clearedFields[conversion.FieldAdvertiserID] = struct{}{}
}

// AdvertiserIDCleared returns if the "advertiser_id" field was cleared in this mutation.
func (m *ConversionMutation) AdvertiserIDCleared() bool {
	_, ok := m.clearedFields[conversion.FieldAdvertiserID]
	return ok
}

// ResetAdvertiserID resets all changes to the "advertiser_id" field.
func (m *ConversionMutation) ResetAdvertiserID() {
	m.advertiser_id = nil
	delete(m.clearedFields, conversion.FieldAdvertiserID)
}

// SetOfferURLID sets the "offer_url_id" field.
func (m *ConversionMutation) SetOfferURLID(s string) {
	m.offer_url_id = &s
}

// OfferURLID returns the value of the "offer_url_id" field in the mutation.
func (m *ConversionMutation) OfferURLID() (r string, exists bool) {
	v := m.offer_url_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferURLID returns the old "offer_url_id" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldOfferURLID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferURLID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferURLID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferURLID: %w", err)
	}
	return oldValue.OfferURLID, nil
}

// ClearOfferURLID clears the value of the "offer_url_id" field.
func (m *ConversionMutation) ClearOfferURLID() {
	m.offer_url_id = nil
	m.clearedFields[conversion.FieldOfferURLID] = struct{}{}
}

// OfferURLIDCleared returns if the "offer_url_id" field was cleared in this mutation.
func (m *ConversionMutation) OfferURLIDCleared() bool {
	_, ok := m.clearedFields[conversion.FieldOfferURLID]
	return ok
}

// ResetOfferURLID resets all changes to the "offer_url_id" field.
func (m *ConversionMutation) ResetOfferURLID() {
	m.offer_url_id = nil
	delete(m.clearedFields, conversion.FieldOfferURLID)
}

// SetAffiliateSource sets the "affiliate_source" field.
func (m *ConversionMutation) SetAffiliateSource(s string) {
	m.affiliate_source = &s
}

// AffiliateSource returns the value of the "affiliate_source" field in the mutation.
func (m *ConversionMutation) AffiliateSource() (r string, exists bool) {
	v := m.affiliate_source
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateSource returns the old "affiliate_source" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldAffiliateSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateSource: %w", err)
	}
	return oldValue.AffiliateSource, nil
}

// ClearAffiliateSource clears the value of the "affiliate_source" field.
func (m *ConversionMutation) ClearAffiliateSource() {
	m.affiliate_source = nil
	m.clearedFields[conversion.FieldAffiliateSource] = struct{}{}
}

// AffiliateSourceCleared returns if the "affiliate_source" field was cleared in this mutation.
func (m *ConversionMutation) AffiliateSourceCleared() bool {
	_, ok := m.clearedFields[conversion.FieldAffiliateSource]
	return ok
}

// ResetAffiliateSource resets all changes to the "affiliate_source" field.
func (m *ConversionMutation) ResetAffiliateSource() {
	m.affiliate_source = nil
	delete(m.clearedFields, conversion.FieldAffiliateSource)
}

// SetMetadata sets the "metadata" field.
func (m *ConversionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ConversionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *ConversionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[conversion.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ConversionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[conversion.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ConversionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, conversion.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ConversionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversion entity.
// If the Conversion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ConversionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConversionMutation builder.
func (m *ConversionMutation) Where(ps ...predicate.Conversion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversion).
func (m *ConversionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversionMutation) Fields() []string {
	fields := make([]string, 0, 32)
	if m.click_id != nil {
		fields = append(fields, conversion.FieldClickID)
	}
	if m.goal_id != nil {
		fields = append(fields, conversion.FieldGoalID)
	}
	if m.goal_type != nil {
		fields = append(fields, conversion.FieldGoalType)
	}
	if m.affiliate_id != nil {
		fields = append(fields, conversion.FieldAffiliateID)
	}
	if m.offer_id != nil {
		fields = append(fields, conversion.FieldOfferID)
	}
	if m.amount != nil {
		fields = append(fields, conversion.FieldAmount)
	}
	if m.sale_amount != nil {
		fields = append(fields, conversion.FieldSaleAmount)
	}
	if m.status != nil {
		fields = append(fields, conversion.FieldStatus)
	}
	if m.sub1 != nil {
		fields = append(fields, conversion.FieldSub1)
	}
	if m.sub2 != nil {
		fields = append(fields, conversion.FieldSub2)
	}
	if m.sub3 != nil {
		fields = append(fields, conversion.FieldSub3)
	}
	if m.sub4 != nil {
		fields = append(fields, conversion.FieldSub4)
	}
	if m.sub5 != nil {
		fields = append(fields, conversion.FieldSub5)
	}
	if m.user_agent != nil {
		fields = append(fields, conversion.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, conversion.FieldIPAddress)
	}
	if m.country != nil {
		fields = append(fields, conversion.FieldCountry)
	}
	if m.region != nil {
		fields = append(fields, conversion.FieldRegion)
	}
	if m.source != nil {
		fields = append(fields, conversion.FieldSource)
	}
	if m.platform != nil {
		fields = append(fields, conversion.FieldPlatform)
	}
	if m.browser != nil {
		fields = append(fields, conversion.FieldBrowser)
	}
	if m.os != nil {
		fields = append(fields, conversion.FieldOs)
	}
	if m.os_version != nil {
		fields = append(fields, conversion.FieldOsVersion)
	}
	if m.manufacturer != nil {
		fields = append(fields, conversion.FieldManufacturer)
	}
	if m.device_type != nil {
		fields = append(fields, conversion.FieldDeviceType)
	}
	if m.is_test != nil {
		fields = append(fields, conversion.FieldIsTest)
	}
	if m.click_hash != nil {
		fields = append(fields, conversion.FieldClickHash)
	}
	if m.advertiser_id != nil {
		fields = append(fields, conversion.FieldAdvertiserID)
	}
	if m.offer_url_id != nil {
		fields = append(fields, conversion.FieldOfferURLID)
	}
	if m.affiliate_source != nil {
		fields = append(fields, conversion.FieldAffiliateSource)
	}
	if m.metadata != nil {
		fields = append(fields, conversion.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, conversion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversion.FieldClickID:
		return m.ClickID()
	case conversion.FieldGoalID:
		return m.GoalID()
	case conversion.FieldGoalType:
		return m.GoalType()
	case conversion.FieldAffiliateID:
		return m.AffiliateID()
	case conversion.FieldOfferID:
		return m.OfferID()
	case conversion.FieldAmount:
		return m.Amount()
	case conversion.FieldSaleAmount:
		return m.SaleAmount()
	case conversion.FieldStatus:
		return m.Status()
	case conversion.FieldSub1:
		return m.Sub1()
	case conversion.FieldSub2:
		return m.Sub2()
	case conversion.FieldSub3:
		return m.Sub3()
	case conversion.FieldSub4:
		return m.Sub4()
	case conversion.FieldSub5:
		return m.Sub5()
	case conversion.FieldUserAgent:
		return m.UserAgent()
	case conversion.FieldIPAddress:
		return m.IPAddress()
	case conversion.FieldCountry:
		return m.Country()
	case conversion.FieldRegion:
		return m.Region()
	case conversion.FieldSource:
		return m.Source()
	case conversion.FieldPlatform:
		return m.Platform()
	case conversion.FieldBrowser:
		return m.Browser()
	case conversion.FieldOs:
		return m.Os()
	case conversion.FieldOsVersion:
		return m.OsVersion()
	case conversion.FieldManufacturer:
		return m.Manufacturer()
	case conversion.FieldDeviceType:
		return m.DeviceType()
	case conversion.FieldIsTest:
		return m.IsTest()
	case conversion.FieldClickHash:
		return m.ClickHash()
	case conversion.FieldAdvertiserID:
		return m.AdvertiserID()
	case conversion.FieldOfferURLID:
		return m.OfferURLID()
	case conversion.FieldAffiliateSource:
		return m.AffiliateSource()
	case conversion.FieldMetadata:
		return m.Metadata()
	case conversion.FieldCreatedAt:
		return m.CreatedAt()
	case conversion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversion.FieldClickID:
		return m.OldClickID(ctx)
	case conversion.FieldGoalID:
		return m.OldGoalID(ctx)
	case conversion.FieldGoalType:
		return m.OldGoalType(ctx)
	case conversion.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case conversion.FieldOfferID:
		return m.OldOfferID(ctx)
	case conversion.FieldAmount:
		return m.OldAmount(ctx)
	case conversion.FieldSaleAmount:
		return m.OldSaleAmount(ctx)
	case conversion.FieldStatus:
		return m.OldStatus(ctx)
	case conversion.FieldSub1:
		return m.OldSub1(ctx)
	case conversion.FieldSub2:
		return m.OldSub2(ctx)
	case conversion.FieldSub3:
		return m.OldSub3(ctx)
	case conversion.FieldSub4:
		return m.OldSub4(ctx)
	case conversion.FieldSub5:
		return m.OldSub5(ctx)
	case conversion.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case conversion.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case conversion.FieldCountry:
		return m.OldCountry(ctx)
	case conversion.FieldRegion:
		return m.OldRegion(ctx)
	case conversion.FieldSource:
		return m.OldSource(ctx)
	case conversion.FieldPlatform:
		return m.OldPlatform(ctx)
	case conversion.FieldBrowser:
		return m.OldBrowser(ctx)
	case conversion.FieldOs:
		return m.OldOs(ctx)
	case conversion.FieldOsVersion:
		return m.OldOsVersion(ctx)
	case conversion.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case conversion.FieldDeviceType:
		return m.OldDeviceType(ctx)
	case conversion.FieldIsTest:
		return m.OldIsTest(ctx)
	case conversion.FieldClickHash:
		return m.OldClickHash(ctx)
	case conversion.FieldAdvertiserID:
		return m.OldAdvertiserID(ctx)
	case conversion.FieldOfferURLID:
		return m.OldOfferURLID(ctx)
	case conversion.FieldAffiliateSource:
		return m.OldAffiliateSource(ctx)
	case conversion.FieldMetadata:
		return m.OldMetadata(ctx)
	case conversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversion.FieldClickID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickID(v)
		return nil
	case conversion.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case conversion.FieldGoalType:
		v, ok := value.(conversion.GoalType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalType(v)
		return nil
	case conversion.FieldAffiliateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case conversion.FieldOfferID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferID(v)
		return nil
	case conversion.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case conversion.FieldSaleAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleAmount(v)
		return nil
	case conversion.FieldStatus:
		v, ok := value.(conversion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversion.FieldSub1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub1(v)
		return nil
	case conversion.FieldSub2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub2(v)
		return nil
	case conversion.FieldSub3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub3(v)
		return nil
	case conversion.FieldSub4:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub4(v)
		return nil
	case conversion.FieldSub5:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub5(v)
		return nil
	case conversion.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case conversion.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case conversion.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case conversion.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case conversion.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case conversion.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case conversion.FieldBrowser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrowser(v)
		return nil
	case conversion.FieldOs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOs(v)
		return nil
	case conversion.FieldOsVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOsVersion(v)
		return nil
	case conversion.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case conversion.FieldDeviceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceType(v)
		return nil
	case conversion.FieldIsTest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTest(v)
		return nil
	case conversion.FieldClickHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickHash(v)
		return nil
	case conversion.FieldAdvertiserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdvertiserID(v)
		return nil
	case conversion.FieldOfferURLID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferURLID(v)
		return nil
	case conversion.FieldAffiliateSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateSource(v)
		return nil
	case conversion.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case conversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, conversion.FieldAmount)
	}
	if m.addsale_amount != nil {
		fields = append(fields, conversion.FieldSaleAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversion.FieldAmount:
		return m.AddedAmount()
	case conversion.FieldSaleAmount:
		return m.AddedSaleAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversion.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case conversion.FieldSaleAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSaleAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Conversion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversion.FieldAffiliateID) {
		fields = append(fields, conversion.FieldAffiliateID)
	}
	if m.FieldCleared(conversion.FieldOfferID) {
		fields = append(fields, conversion.FieldOfferID)
	}
	if m.FieldCleared(conversion.FieldSaleAmount) {
		fields = append(fields, conversion.FieldSaleAmount)
	}
	if m.FieldCleared(conversion.FieldSub1) {
		fields = append(fields, conversion.FieldSub1)
	}
	if m.FieldCleared(conversion.FieldSub2) {
		fields = append(fields, conversion.FieldSub2)
	}
	if m.FieldCleared(conversion.FieldSub3) {
		fields = append(fields, conversion.FieldSub3)
	}
	if m.FieldCleared(conversion.FieldSub4) {
		fields = append(fields, conversion.FieldSub4)
	}
	if m.FieldCleared(conversion.FieldSub5) {
		fields = append(fields, conversion.FieldSub5)
	}
	if m.FieldCleared(conversion.FieldUserAgent) {
		fields = append(fields, conversion.FieldUserAgent)
	}
	if m.FieldCleared(conversion.FieldIPAddress) {
		fields = append(fields, conversion.FieldIPAddress)
	}
	if m.FieldCleared(conversion.FieldCountry) {
		fields = append(fields, conversion.FieldCountry)
	}
	if m.FieldCleared(conversion.FieldRegion) {
		fields = append(fields, conversion.FieldRegion)
	}
	if m.FieldCleared(conversion.FieldSource) {
		fields = append(fields, conversion.FieldSource)
	}
	if m.FieldCleared(conversion.FieldPlatform) {
		fields = append(fields, conversion.FieldPlatform)
	}
	if m.FieldCleared(conversion.FieldBrowser) {
		fields = append(fields, conversion.FieldBrowser)
	}
	if m.FieldCleared(conversion.FieldOs) {
		fields = append(fields, conversion.FieldOs)
	}
	if m.FieldCleared(conversion.FieldOsVersion) {
		fields = append(fields, conversion.FieldOsVersion)
	}
	if m.FieldCleared(conversion.FieldManufacturer) {
		fields = append(fields, conversion.FieldManufacturer)
	}
	if m.FieldCleared(conversion.FieldDeviceType) {
		fields = append(fields, conversion.FieldDeviceType)
	}
	if m.FieldCleared(conversion.FieldClickHash) {
		fields = append(fields, conversion.FieldClickHash)
	}
	if m.FieldCleared(conversion.FieldAdvertiserID) {
		fields = append(fields, conversion.FieldAdvertiserID)
	}
	if m.FieldCleared(conversion.FieldOfferURLID) {
		fields = append(fields, conversion.FieldOfferURLID)
	}
	if m.FieldCleared(conversion.FieldAffiliateSource) {
		fields = append(fields, conversion.FieldAffiliateSource)
	}
	if m.FieldCleared(conversion.FieldMetadata) {
		fields = append(fields, conversion.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversionMutation) ClearField(name string) error {
	switch name {
	case conversion.FieldAffiliateID:
		m.ClearAffiliateID()
		return nil
	case conversion.FieldOfferID:
		m.ClearOfferID()
		return nil
	case conversion.FieldSaleAmount:
		m.ClearSaleAmount()
		return nil
	case conversion.FieldSub1:
		m.ClearSub1()
		return nil
	case conversion.FieldSub2:
		m.ClearSub2()
		return nil
	case conversion.FieldSub3:
		m.ClearSub3()
		return nil
	case conversion.FieldSub4:
		m.ClearSub4()
		return nil
	case conversion.FieldSub5:
		m.ClearSub5()
		return nil
	case conversion.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case conversion.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case conversion.FieldCountry:
		m.ClearCountry()
		return nil
	case conversion.FieldRegion:
		m.ClearRegion()
		return nil
	case conversion.FieldSource:
		m.ClearSource()
		return nil
	case conversion.FieldPlatform:
		m.ClearPlatform()
		return nil
	case conversion.FieldBrowser:
		m.ClearBrowser()
		return nil
	case conversion.FieldOs:
		m.ClearOs()
		return nil
	case conversion.FieldOsVersion:
		m.ClearOsVersion()
		return nil
	case conversion.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case conversion.FieldDeviceType:
		m.ClearDeviceType()
		return nil
	case conversion.FieldClickHash:
		m.ClearClickHash()
		return nil
	case conversion.FieldAdvertiserID:
		m.ClearAdvertiserID()
		return nil
	case conversion.FieldOfferURLID:
		m.ClearOfferURLID()
		return nil
	case conversion.FieldAffiliateSource:
		m.ClearAffiliateSource()
		return nil
	case conversion.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Conversion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversionMutation) ResetField(name string) error {
	switch name {
	case conversion.FieldClickID:
		m.ResetClickID()
		return nil
	case conversion.FieldGoalID:
		m.ResetGoalID()
		return nil
	case conversion.FieldGoalType:
		m.ResetGoalType()
		return nil
	case conversion.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case conversion.FieldOfferID:
		m.ResetOfferID()
		return nil
	case conversion.FieldAmount:
		m.ResetAmount()
		return nil
	case conversion.FieldSaleAmount:
		m.ResetSaleAmount()
		return nil
	case conversion.FieldStatus:
		m.ResetStatus()
		return nil
	case conversion.FieldSub1:
		m.ResetSub1()
		return nil
	case conversion.FieldSub2:
		m.ResetSub2()
		return nil
	case conversion.FieldSub3:
		m.ResetSub3()
		return nil
	case conversion.FieldSub4:
		m.ResetSub4()
		return nil
	case conversion.FieldSub5:
		m.ResetSub5()
		return nil
	case conversion.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case conversion.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case conversion.FieldCountry:
		m.ResetCountry()
		return nil
	case conversion.FieldRegion:
		m.ResetRegion()
		return nil
	case conversion.FieldSource:
		m.ResetSource()
		return nil
	case conversion.FieldPlatform:
		m.ResetPlatform()
		return nil
	case conversion.FieldBrowser:
		m.ResetBrowser()
		return nil
	case conversion.FieldOs:
		m.ResetOs()
		return nil
	case conversion.FieldOsVersion:
		m.ResetOsVersion()
		return nil
	case conversion.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case conversion.FieldDeviceType:
		m.ResetDeviceType()
		return nil
	case conversion.FieldIsTest:
		m.ResetIsTest()
		return nil
	case conversion.FieldClickHash:
		m.ResetClickHash()
		return nil
	case conversion.FieldAdvertiserID:
		m.ResetAdvertiserID()
		return nil
	case conversion.FieldOfferURLID:
		m.ResetOfferURLID()
		return nil
	case conversion.FieldAffiliateSource:
		m.ResetAffiliateSource()
		return nil
	case conversion.FieldMetadata:
		m.ResetMetadata()
		return nil
	case conversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Conversion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Conversion edge %s", name)
}

// FTDMutation represents an operation that mutates the FTD nodes in the graph.
type FTDMutation struct {
	config
	op             Op
	typ            string
	id             *int
	click_id       *string
	affiliate_id   *string
	offer_id       *string
	amount         *float64
	addamount      *float64
	sale_amount    *float64
	addsale_amount *float64
	status         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FTD, error)
	predicates     []predicate.FTD
}

var _ ent.Mutation = (*FTDMutation)(nil)

// ftdOption allows management of the mutation configuration using functional options.
type ftdOption func(*FTDMutation)

// newFTDMutation creates new mutation for the FTD entity.
func newFTDMutation(c config, op Op, opts ...ftdOption) *FTDMutation {
	m := &FTDMutation{
		config:        c,
		op:            op,
		typ:           TypeFTD,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFTDID sets the ID field of the mutation.
func withFTDID(id int) ftdOption {
	return func(m *FTDMutation) {
		var (
			err   error
			once  sync.Once
			value *FTD
		)
		m.oldValue = func(ctx context.Context) (*FTD, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FTD.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFTD sets the old FTD of the mutation.
func withFTD(node *FTD) ftdOption {
	return func(m *FTDMutation) {
		m.oldValue = func(context.Context) (*FTD, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FTDMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FTDMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FTDMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FTDMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FTD.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClickID sets the "click_id" field.
func (m *FTDMutation) SetClickID(s string) {
	m.click_id = &s
}

// ClickID returns the value of the "click_id" field in the mutation.
func (m *FTDMutation) ClickID() (r string, exists bool) {
	v := m.click_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClickID returns the old "click_id" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldClickID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickID: %w", err)
	}
	return oldValue.ClickID, nil
}

// ResetClickID resets all changes to the "click_id" field.
func (m *FTDMutation) ResetClickID() {
	m.click_id = nil
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *FTDMutation) SetAffiliateID(s string) {
	m.affiliate_id = &s
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *FTDMutation) AffiliateID() (r string, exists bool) {
	v := m.affiliate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldAffiliateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (m *FTDMutation) ClearAffiliateID() {
	m.affiliate_id = nil
	m.clearedFields[ftd.FieldAffiliateID] = struct{}{}
}

// AffiliateIDCleared returns if the "affiliate_id" field was cleared in this mutation.
func (m *FTDMutation) AffiliateIDCleared() bool {
	_, ok := m.clearedFields[ftd.FieldAffiliateID]
	return ok
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *FTDMutation) ResetAffiliateID() {
	m.affiliate_id = nil
	delete(m.clearedFields, ftd.FieldAffiliateID)
}

// SetOfferID sets the "offer_id" field.
func (m *FTDMutation) SetOfferID(s string) {
	m.offer_id = &s
}

// OfferID returns the value of the "offer_id" field in the mutation.
func (m *FTDMutation) OfferID() (r string, exists bool) {
	v := m.offer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferID returns the old "offer_id" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldOfferID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferID: %w", err)
	}
	return oldValue.OfferID, nil
}

// ClearOfferID clears the value of the "offer_id" field.
func (m *FTDMutation) ClearOfferID() {
	m.offer_id = nil
	m.clearedFields[ftd.FieldOfferID] = struct{}{}
}

// OfferIDCleared returns if the "offer_id" field was cleared in this mutation.
func (m *FTDMutation) OfferIDCleared() bool {
	_, ok := m.clearedFields[ftd.FieldOfferID]
	return ok
}

// ResetOfferID resets all changes to the "offer_id" field.
func (m *FTDMutation) ResetOfferID() {
	m.offer_id = nil
	delete(m.clearedFields, ftd.FieldOfferID)
}

// SetAmount sets the "amount" field.
func (m *FTDMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *FTDMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *FTDMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *FTDMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *FTDMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetSaleAmount sets the "sale_amount" field.
func (m *FTDMutation) SetSaleAmount(f float64) {
	m.sale_amount = &f
	m.addsale_amount = nil
}

// SaleAmount returns the value of the "sale_amount" field in the mutation.
func (m *FTDMutation) SaleAmount() (r float64, exists bool) {
	v := m.sale_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleAmount returns the old "sale_amount" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldSaleAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleAmount: %w", err)
	}
	return oldValue.SaleAmount, nil
}

// AddSaleAmount adds f to the "sale_amount" field.
func (m *FTDMutation) AddSaleAmount(f float64) {
	if m.addsale_amount != nil {
		*m.addsale_amount += f
	} else {
		m.addsale_amount = &f
	}
}

// AddedSaleAmount returns the value that was added to the "sale_amount" field in this mutation.
func (m *FTDMutation) AddedSaleAmount() (r float64, exists bool) {
	v := m.addsale_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (m *FTDMutation) ClearSaleAmount() {
	m.sale_amount = nil
	m.addsale_amount = nil
	m.clearedFields[ftd.FieldSaleAmount] = struct{}{}
}

// SaleAmountCleared returns if the "sale_amount" field was cleared in this mutation.
func (m *FTDMutation) SaleAmountCleared() bool {
	_, ok := m.clearedFields[ftd.FieldSaleAmount]
	return ok
}

// ResetSaleAmount resets all changes to the "sale_amount" field.
func (m *FTDMutation) ResetSaleAmount() {
	m.sale_amount = nil
	m.addsale_amount = nil
	delete(m.clearedFields, ftd.FieldSaleAmount)
}

// SetStatus sets the "status" field.
func (m *FTDMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FTDMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *FTDMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FTDMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FTDMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FTD entity.
// If the FTD object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FTDMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FTDMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FTDMutation builder.
func (m *FTDMutation) Where(ps ...predicate.FTD) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FTDMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FTDMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FTD, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FTDMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FTDMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FTD).
func (m *FTDMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FTDMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.click_id != nil {
		fields = append(fields, ftd.FieldClickID)
	}
	if m.affiliate_id != nil {
		fields = append(fields, ftd.FieldAffiliateID)
	}
	if m.offer_id != nil {
		fields = append(fields, ftd.FieldOfferID)
	}
	if m.amount != nil {
		fields = append(fields, ftd.FieldAmount)
	}
	if m.sale_amount != nil {
		fields = append(fields, ftd.FieldSaleAmount)
	}
	if m.status != nil {
		fields = append(fields, ftd.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, ftd.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FTDMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ftd.FieldClickID:
		return m.ClickID()
	case ftd.FieldAffiliateID:
		return m.AffiliateID()
	case ftd.FieldOfferID:
		return m.OfferID()
	case ftd.FieldAmount:
		return m.Amount()
	case ftd.FieldSaleAmount:
		return m.SaleAmount()
	case ftd.FieldStatus:
		return m.Status()
	case ftd.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FTDMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ftd.FieldClickID:
		return m.OldClickID(ctx)
	case ftd.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case ftd.FieldOfferID:
		return m.OldOfferID(ctx)
	case ftd.FieldAmount:
		return m.OldAmount(ctx)
	case ftd.FieldSaleAmount:
		return m.OldSaleAmount(ctx)
	case ftd.FieldStatus:
		return m.OldStatus(ctx)
	case ftd.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FTD field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FTDMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ftd.FieldClickID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickID(v)
		return nil
	case ftd.FieldAffiliateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case ftd.FieldOfferID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferID(v)
		return nil
	case ftd.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case ftd.FieldSaleAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleAmount(v)
		return nil
	case ftd.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ftd.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FTD field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FTDMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, ftd.FieldAmount)
	}
	if m.addsale_amount != nil {
		fields = append(fields, ftd.FieldSaleAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FTDMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ftd.FieldAmount:
		return m.AddedAmount()
	case ftd.FieldSaleAmount:
		return m.AddedSaleAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FTDMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ftd.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case ftd.FieldSaleAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSaleAmount(v)
		return nil
	}
	return fmt.Errorf("unknown FTD numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FTDMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ftd.FieldAffiliateID) {
		fields = append(fields, ftd.FieldAffiliateID)
	}
	if m.FieldCleared(ftd.FieldOfferID) {
		fields = append(fields, ftd.FieldOfferID)
	}
	if m.FieldCleared(ftd.FieldSaleAmount) {
		fields = append(fields, ftd.FieldSaleAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FTDMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FTDMutation) ClearField(name string) error {
	switch name {
	case ftd.FieldAffiliateID:
		m.ClearAffiliateID()
		return nil
	case ftd.FieldOfferID:
		m.ClearOfferID()
		return nil
	case ftd.FieldSaleAmount:
		m.ClearSaleAmount()
		return nil
	}
	return fmt.Errorf("unknown FTD nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FTDMutation) ResetField(name string) error {
	switch name {
	case ftd.FieldClickID:
		m.ResetClickID()
		return nil
	case ftd.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case ftd.FieldOfferID:
		m.ResetOfferID()
		return nil
	case ftd.FieldAmount:
		m.ResetAmount()
		return nil
	case ftd.FieldSaleAmount:
		m.ResetSaleAmount()
		return nil
	case ftd.FieldStatus:
		m.ResetStatus()
		return nil
	case ftd.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FTD field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FTDMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FTDMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FTDMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FTDMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FTDMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FTDMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FTDMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FTD unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FTDMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FTD edge %s", name)
}

// PostbackMutation represents an operation that mutates the Postback nodes in the graph.
type PostbackMutation struct {
	config
	op             Op
	typ            string
	id             *int
	click_id       *string
	goal           *postback.Goal
	affiliate_id   *string
	offer_id       *string
	amount         *float64
	addamount      *float64
	sale_amount    *float64
	addsale_amount *float64
	status         *string
	sub1           *string
	sub2           *string
	sub3           *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Postback, error)
	predicates     []predicate.Postback
}

var _ ent.Mutation = (*PostbackMutation)(nil)

// postbackOption allows management of the mutation configuration using functional options.
type postbackOption func(*PostbackMutation)

// newPostbackMutation creates new mutation for the Postback entity.
func newPostbackMutation(c config, op Op, opts ...postbackOption) *PostbackMutation {
	m := &PostbackMutation{
		config:        c,
		op:            op,
		typ:           TypePostback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostbackID sets the ID field of the mutation.
func withPostbackID(id int) postbackOption {
	return func(m *PostbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Postback
		)
		m.oldValue = func(ctx context.Context) (*Postback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Postback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPostback sets the old Postback of the mutation.
func withPostback(node *Postback) postbackOption {
	return func(m *PostbackMutation) {
		m.oldValue = func(context.Context) (*Postback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Postback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClickID sets the "click_id" field.
func (m *PostbackMutation) SetClickID(s string) {
	m.click_id = &s
}

// ClickID returns the value of the "click_id" field in the mutation.
func (m *PostbackMutation) ClickID() (r string, exists bool) {
	v := m.click_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClickID returns the old "click_id" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldClickID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickID: %w", err)
	}
	return oldValue.ClickID, nil
}

// ResetClickID resets all changes to the "click_id" field.
func (m *PostbackMutation) ResetClickID() {
	m.click_id = nil
}

// SetGoal sets the "goal" field.
func (m *PostbackMutation) SetGoal(po postback.Goal) {
	m.goal = &po
}

// Goal returns the value of the "goal" field in the mutation.
func (m *PostbackMutation) Goal() (r postback.Goal, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldGoal(ctx context.Context) (v postback.Goal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *PostbackMutation) ResetGoal() {
	m.goal = nil
}

// SetAffiliateID sets the "affiliate_id" field.
func (m *PostbackMutation) SetAffiliateID(s string) {
	m.affiliate_id = &s
}

// AffiliateID returns the value of the "affiliate_id" field in the mutation.
func (m *PostbackMutation) AffiliateID() (r string, exists bool) {
	v := m.affiliate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliateID returns the old "affiliate_id" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldAffiliateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliateID: %w", err)
	}
	return oldValue.AffiliateID, nil
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (m *PostbackMutation) ClearAffiliateID() {
	m.affiliate_id = nil
	m.clearedFields[postback.FieldAffiliateID] = struct{}{}
}

// AffiliateIDCleared returns if the "affiliate_id" field was cleared in this mutation.
func (m *PostbackMutation) AffiliateIDCleared() bool {
	_, ok := m.clearedFields[postback.FieldAffiliateID]
	return ok
}

// ResetAffiliateID resets all changes to the "affiliate_id" field.
func (m *PostbackMutation) ResetAffiliateID() {
	m.affiliate_id = nil
	delete(m.clearedFields, postback.FieldAffiliateID)
}

// SetOfferID sets the "offer_id" field.
func (m *PostbackMutation) SetOfferID(s string) {
	m.offer_id = &s
}

// OfferID returns the value of the "offer_id" field in the mutation.
func (m *PostbackMutation) OfferID() (r string, exists bool) {
	v := m.offer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferID returns the old "offer_id" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldOfferID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferID: %w", err)
	}
	return oldValue.OfferID, nil
}

// ClearOfferID clears the value of the "offer_id" field.
func (m *PostbackMutation) ClearOfferID() {
	m.offer_id = nil
	m.clearedFields[postback.FieldOfferID] = struct{}{}
}

// OfferIDCleared returns if the "offer_id" field was cleared in this mutation.
func (m *PostbackMutation) OfferIDCleared() bool {
	_, ok := m.clearedFields[postback.FieldOfferID]
	return ok
}

// ResetOfferID resets all changes to the "offer_id" field.
func (m *PostbackMutation) ResetOfferID() {
	m.offer_id = nil
	delete(m.clearedFields, postback.FieldOfferID)
}

// SetAmount sets the "amount" field.
func (m *PostbackMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PostbackMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *PostbackMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PostbackMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *PostbackMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetSaleAmount sets the "sale_amount" field.
func (m *PostbackMutation) SetSaleAmount(f float64) {
	m.sale_amount = &f
	m.addsale_amount = nil
}

// SaleAmount returns the value of the "sale_amount" field in the mutation.
func (m *PostbackMutation) SaleAmount() (r float64, exists bool) {
	v := m.sale_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldSaleAmount returns the old "sale_amount" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldSaleAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaleAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaleAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaleAmount: %w", err)
	}
	return oldValue.SaleAmount, nil
}

// AddSaleAmount adds f to the "sale_amount" field.
func (m *PostbackMutation) AddSaleAmount(f float64) {
	if m.addsale_amount != nil {
		*m.addsale_amount += f
	} else {
		m.addsale_amount = &f
	}
}

// AddedSaleAmount returns the value that was added to the "sale_amount" field in this mutation.
func (m *PostbackMutation) AddedSaleAmount() (r float64, exists bool) {
	v := m.addsale_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (m *PostbackMutation) ClearSaleAmount() {
	m.sale_amount = nil
	m.addsale_amount = nil
	m.clearedFields[postback.FieldSaleAmount] = struct{}{}
}

// SaleAmountCleared returns if the "sale_amount" field was cleared in this mutation.
func (m *PostbackMutation) SaleAmountCleared() bool {
	_, ok := m.clearedFields[postback.FieldSaleAmount]
	return ok
}

// ResetSaleAmount resets all changes to the "sale_amount" field.
func (m *PostbackMutation) ResetSaleAmount() {
	m.sale_amount = nil
	m.addsale_amount = nil
	delete(m.clearedFields, postback.FieldSaleAmount)
}

// SetStatus sets the "status" field.
func (m *PostbackMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PostbackMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *PostbackMutation) ResetStatus() {
	m.status = nil
}

// SetSub1 sets the "sub1" field.
func (m *PostbackMutation) SetSub1(s string) {
	m.sub1 = &s
}

// Sub1 returns the value of the "sub1" field in the mutation.
func (m *PostbackMutation) Sub1() (r string, exists bool) {
	v := m.sub1
	if v == nil {
		return
	}
	return *v, true
}

// OldSub1 returns the old "sub1" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldSub1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub1: %w", err)
	}
	return oldValue.Sub1, nil
}

// ClearSub1 clears the value of the "sub1" field.
func (m *PostbackMutation) ClearSub1() {
	m.sub1 = nil
	m.clearedFields[postback.FieldSub1] = struct{}{}
}

// Sub1Cleared returns if the "sub1" field was cleared in this mutation.
func (m *PostbackMutation) Sub1Cleared() bool {
	_, ok := m.clearedFields[postback.FieldSub1]
	return ok
}

// ResetSub1 resets all changes to the "sub1" field.
func (m *PostbackMutation) ResetSub1() {
	m.sub1 = nil
	delete(m.clearedFields, postback.FieldSub1)
}

// SetSub2 sets the "sub2" field.
func (m *PostbackMutation) SetSub2(s string) {
	m.sub2 = &s
}

// Sub2 returns the value of the "sub2" field in the mutation.
func (m *PostbackMutation) Sub2() (r string, exists bool) {
	v := m.sub2
	if v == nil {
		return
	}
	return *v, true
}

// OldSub2 returns the old "sub2" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldSub2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub2: %w", err)
	}
	return oldValue.Sub2, nil
}

// ClearSub2 clears the value of the "sub2" field.
func (m *PostbackMutation) ClearSub2() {
	m.sub2 = nil
	m.clearedFields[postback.FieldSub2] = struct{}{}
}

// Sub2Cleared returns if the "sub2" field was cleared in this mutation.
func (m *PostbackMutation) Sub2Cleared() bool {
	_, ok := m.clearedFields[postback.FieldSub2]
	return ok
}

// ResetSub2 resets all changes to the "sub2" field.
func (m *PostbackMutation) ResetSub2() {
	m.sub2 = nil
	delete(m.clearedFields, postback.FieldSub2)
}

// SetSub3 sets the "sub3" field.
func (m *PostbackMutation) SetSub3(s string) {
	m.sub3 = &s
}

// Sub3 returns the value of the "sub3" field in the mutation.
func (m *PostbackMutation) Sub3() (r string, exists bool) {
	v := m.sub3
	if v == nil {
		return
	}
	return *v, true
}

// OldSub3 returns the old "sub3" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldSub3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSub3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSub3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSub3: %w", err)
	}
	return oldValue.Sub3, nil
}

// ClearSub3 clears the value of the "sub3" field.
func (m *PostbackMutation) ClearSub3() {
	m.sub3 = nil
	m.clearedFields[postback.FieldSub3] = struct{}{}
}

// Sub3Cleared returns if the "sub3" field was cleared in this mutation.
func (m *PostbackMutation) Sub3Cleared() bool {
	_, ok := m.clearedFields[postback.FieldSub3]
	return ok
}

// ResetSub3 resets all changes to the "sub3" field.
func (m *PostbackMutation) ResetSub3() {
	m.sub3 = nil
	delete(m.clearedFields, postback.FieldSub3)
}

// SetCreatedAt sets the "created_at" field.
func (m *PostbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PostbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Postback entity.
// If the Postback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PostbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PostbackMutation builder.
func (m *PostbackMutation) Where(ps ...predicate.Postback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Postback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Postback).
func (m *PostbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostbackMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.click_id != nil {
		fields = append(fields, postback.FieldClickID)
	}
	if m.goal != nil {
		fields = append(fields, postback.FieldGoal)
	}
	if m.affiliate_id != nil {
		fields = append(fields, postback.FieldAffiliateID)
	}
	if m.offer_id != nil {
		fields = append(fields, postback.FieldOfferID)
	}
	if m.amount != nil {
		fields = append(fields, postback.FieldAmount)
	}
	if m.sale_amount != nil {
		fields = append(fields, postback.FieldSaleAmount)
	}
	if m.status != nil {
		fields = append(fields, postback.FieldStatus)
	}
	if m.sub1 != nil {
		fields = append(fields, postback.FieldSub1)
	}
	if m.sub2 != nil {
		fields = append(fields, postback.FieldSub2)
	}
	if m.sub3 != nil {
		fields = append(fields, postback.FieldSub3)
	}
	if m.created_at != nil {
		fields = append(fields, postback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case postback.FieldClickID:
		return m.ClickID()
	case postback.FieldGoal:
		return m.Goal()
	case postback.FieldAffiliateID:
		return m.AffiliateID()
	case postback.FieldOfferID:
		return m.OfferID()
	case postback.FieldAmount:
		return m.Amount()
	case postback.FieldSaleAmount:
		return m.SaleAmount()
	case postback.FieldStatus:
		return m.Status()
	case postback.FieldSub1:
		return m.Sub1()
	case postback.FieldSub2:
		return m.Sub2()
	case postback.FieldSub3:
		return m.Sub3()
	case postback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case postback.FieldClickID:
		return m.OldClickID(ctx)
	case postback.FieldGoal:
		return m.OldGoal(ctx)
	case postback.FieldAffiliateID:
		return m.OldAffiliateID(ctx)
	case postback.FieldOfferID:
		return m.OldOfferID(ctx)
	case postback.FieldAmount:
		return m.OldAmount(ctx)
	case postback.FieldSaleAmount:
		return m.OldSaleAmount(ctx)
	case postback.FieldStatus:
		return m.OldStatus(ctx)
	case postback.FieldSub1:
		return m.OldSub1(ctx)
	case postback.FieldSub2:
		return m.OldSub2(ctx)
	case postback.FieldSub3:
		return m.OldSub3(ctx)
	case postback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Postback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case postback.FieldClickID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickID(v)
		return nil
	case postback.FieldGoal:
		v, ok := value.(postback.Goal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case postback.FieldAffiliateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliateID(v)
		return nil
	case postback.FieldOfferID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferID(v)
		return nil
	case postback.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case postback.FieldSaleAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaleAmount(v)
		return nil
	case postback.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case postback.FieldSub1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub1(v)
		return nil
	case postback.FieldSub2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub2(v)
		return nil
	case postback.FieldSub3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSub3(v)
		return nil
	case postback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Postback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostbackMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, postback.FieldAmount)
	}
	if m.addsale_amount != nil {
		fields = append(fields, postback.FieldSaleAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case postback.FieldAmount:
		return m.AddedAmount()
	case postback.FieldSaleAmount:
		return m.AddedSaleAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case postback.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case postback.FieldSaleAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSaleAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Postback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(postback.FieldAffiliateID) {
		fields = append(fields, postback.FieldAffiliateID)
	}
	if m.FieldCleared(postback.FieldOfferID) {
		fields = append(fields, postback.FieldOfferID)
	}
	if m.FieldCleared(postback.FieldSaleAmount) {
		fields = append(fields, postback.FieldSaleAmount)
	}
	if m.FieldCleared(postback.FieldSub1) {
		fields = append(fields, postback.FieldSub1)
	}
	if m.FieldCleared(postback.FieldSub2) {
		fields = append(fields, postback.FieldSub2)
	}
	if m.FieldCleared(postback.FieldSub3) {
		fields = append(fields, postback.FieldSub3)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostbackMutation) ClearField(name string) error {
	switch name {
	case postback.FieldAffiliateID:
		m.ClearAffiliateID()
		return nil
	case postback.FieldOfferID:
		m.ClearOfferID()
		return nil
	case postback.FieldSaleAmount:
		m.ClearSaleAmount()
		return nil
	case postback.FieldSub1:
		m.ClearSub1()
		return nil
	case postback.FieldSub2:
		m.ClearSub2()
		return nil
	case postback.FieldSub3:
		m.ClearSub3()
		return nil
	}
	return fmt.Errorf("unknown Postback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostbackMutation) ResetField(name string) error {
	switch name {
	case postback.FieldClickID:
		m.ResetClickID()
		return nil
	case postback.FieldGoal:
		m.ResetGoal()
		return nil
	case postback.FieldAffiliateID:
		m.ResetAffiliateID()
		return nil
	case postback.FieldOfferID:
		m.ResetOfferID()
		return nil
	case postback.FieldAmount:
		m.ResetAmount()
		return nil
	case postback.FieldSaleAmount:
		m.ResetSaleAmount()
		return nil
	case postback.FieldStatus:
		m.ResetStatus()
		return nil
	case postback.FieldSub1:
		m.ResetSub1()
		return nil
	case postback.FieldSub2:
		m.ResetSub2()
		return nil
	case postback.FieldSub3:
		m.ResetSub3()
		return nil
	case postback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Postback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Postback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Postback edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldKey:
		return m.Key()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}
