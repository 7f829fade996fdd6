package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockItemStore struct {
	mock.Mock
}

func (m *mockItemStore) ListItems(ctx context.Context) ([]ItemRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ItemRow), args.Error(1)
}

func (m *mockItemStore) ListThemes(ctx context.Context) ([]ThemeRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ThemeRow), args.Error(1)
}

func (m *mockItemStore) InsertItem(ctx context.Context, row ItemRow) error {
	return m.Called(ctx, row).Error(0)
}

func (m *mockItemStore) InsertTheme(ctx context.Context, row ThemeRow) error {
	return m.Called(ctx, row).Error(0)
}

func TestItemRepository_Items(t *testing.T) {
	store := new(mockItemStore)
	repo := NewItemRepository(store)

	expect := []ItemRow{
		{Mode: "survival", ItemID: "1", Difficulty: 2, Answers: []string{"Zidane"}, Payload: []byte(`{"id":1}`)},
	}
	store.On("ListItems", mock.Anything).Return(expect, nil)

	got, err := repo.Items(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestItemRepository_ItemsError(t *testing.T) {
	store := new(mockItemStore)
	repo := NewItemRepository(store)

	boom := errors.New("db down")
	store.On("ListItems", mock.Anything).Return([]ItemRow(nil), boom)

	_, err := repo.Items(context.Background())
	assert.ErrorIs(t, err, boom)
	store.AssertExpectations(t)
}

func TestItemRepository_Themes(t *testing.T) {
	store := new(mockItemStore)
	repo := NewItemRepository(store)

	expect := []ThemeRow{{ThemeID: "t1", Title: "Coupe du Monde", Category: "Compétitions"}}
	store.On("ListThemes", mock.Anything).Return(expect, nil)

	got, err := repo.Themes(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestItemRepository_Insert(t *testing.T) {
	store := new(mockItemStore)
	repo := NewItemRepository(store)

	row := ItemRow{Mode: "auctions", ItemID: "a1", Answers: []string{"Henry"}, Payload: []byte(`{}`)}
	store.On("InsertItem", mock.Anything, row).Return(nil)
	theme := ThemeRow{ThemeID: "t1", Title: "Ligue 1"}
	store.On("InsertTheme", mock.Anything, theme).Return(errors.New("conflict"))

	assert.NoError(t, repo.Insert(context.Background(), row))
	assert.Error(t, repo.InsertTheme(context.Background(), theme))
	store.AssertExpectations(t)
}
