// Package viewmodel holds the state of the registry screen: the draft form,
// the stored users, the filter and the edit mode. Every mutation notifies the
// subscribed renderers. A ViewModel is driven by one thread of control and is
// not safe for concurrent use.
package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"peopleRegistry/models"
	"peopleRegistry/repository"
)

// ErrIncompleteDraft is returned by Save when name or email is blank.
var ErrIncompleteDraft = errors.New("name and email are required")

// State is a snapshot of the view-model.
type State struct {
	Name    string
	Email   string
	Users   []models.User
	Visible []models.User
	Filter  string
	// EditingID is meaningful only when Editing is true.
	EditingID int64
	Editing   bool
}

type draft struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

type ViewModel struct {
	store    repository.UserRepositoryI
	validate *validator.Validate

	name    string
	email   string
	users   []models.User
	visible []models.User
	filter  string
	editID  int64
	editing bool

	listeners []func(State)
}

func New(store repository.UserRepositoryI) *ViewModel {
	return &ViewModel{
		store:    store,
		validate: validator.New(),
		users:    []models.User{},
		visible:  []models.User{},
	}
}

// Subscribe registers fn to be called with the new state after every mutation.
func (vm *ViewModel) Subscribe(fn func(State)) {
	vm.listeners = append(vm.listeners, fn)
}

// State returns a snapshot of the current state.
func (vm *ViewModel) State() State {
	return State{
		Name:      vm.name,
		Email:     vm.email,
		Users:     append([]models.User(nil), vm.users...),
		Visible:   append([]models.User(nil), vm.visible...),
		Filter:    vm.filter,
		EditingID: vm.editID,
		Editing:   vm.editing,
	}
}

func (vm *ViewModel) notify() {
	s := vm.State()
	for _, fn := range vm.listeners {
		fn(s)
	}
}

// Mount creates the schema if needed and loads the list.
func (vm *ViewModel) Mount(ctx context.Context) error {
	if err := vm.store.EnsureSchema(ctx); err != nil {
		return err
	}
	return vm.reload(ctx)
}

func (vm *ViewModel) reload(ctx context.Context) error {
	users, err := vm.store.List(ctx)
	if err != nil {
		return err
	}
	vm.users = users
	vm.visible = Filter(vm.users, vm.filter)
	vm.notify()
	return nil
}

func (vm *ViewModel) SetName(name string) {
	vm.name = name
	vm.notify()
}

func (vm *ViewModel) SetEmail(email string) {
	vm.email = email
	vm.notify()
}

// SetFilter recomputes the visible list for text.
func (vm *ViewModel) SetFilter(text string) {
	vm.filter = text
	vm.visible = Filter(vm.users, vm.filter)
	vm.notify()
}

func (vm *ViewModel) ClearFilter() {
	vm.SetFilter("")
}

// Save stores the draft, updating the edited user in edit mode and adding a
// new one otherwise. On success the draft is cleared and the list reloaded.
func (vm *ViewModel) Save(ctx context.Context) error {
	d := draft{Name: strings.TrimSpace(vm.name), Email: strings.TrimSpace(vm.email)}
	if err := vm.validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteDraft, err)
	}
	if vm.editing {
		if err := vm.store.Update(ctx, vm.editID, vm.name, vm.email); err != nil {
			return err
		}
	} else {
		if _, err := vm.store.Add(ctx, vm.name, vm.email); err != nil {
			return err
		}
	}
	vm.resetDraft()
	return vm.reload(ctx)
}

// Edit fills the draft from u and enters edit mode for it.
func (vm *ViewModel) Edit(u models.User) {
	vm.name = u.Name
	vm.email = u.Email
	vm.editID = u.ID
	vm.editing = true
	vm.notify()
}

// Delete removes the user with the given id and reloads the list.
func (vm *ViewModel) Delete(ctx context.Context, id int64) error {
	if err := vm.store.Delete(ctx, id); err != nil {
		return err
	}
	return vm.reload(ctx)
}

// Cancel clears the draft and leaves edit mode. Storage is not touched.
func (vm *ViewModel) Cancel() {
	vm.resetDraft()
	vm.notify()
}

func (vm *ViewModel) resetDraft() {
	vm.name = ""
	vm.email = ""
	vm.editID = 0
	vm.editing = false
}

// Find returns the visible user with the given id.
func (vm *ViewModel) Find(id int64) (models.User, bool) {
	for _, u := range vm.visible {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
