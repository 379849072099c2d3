package usecase

import (
	"context"
	"testing"

	"hms-scheduling/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacilityUsecase(repo *fakeFacilityRepo) FacilityUsecase {
	return NewFacilityUsecase(testDB(), logrus.New(), repo)
}

func TestSuggestReceptionPicksFirstDeskOnFloor(t *testing.T) {
	repo := &fakeFacilityRepo{
		rooms: map[uint]*entity.Room{
			7: {ID: 7, RoomNumber: "204", FloorID: 2},
		},
		receptions: map[uint][]entity.Reception{
			2: {
				{ID: 11, Name: "Reception B", FloorID: 2},
				{ID: 12, Name: "Reception C", FloorID: 2},
			},
		},
	}
	u := newFacilityUsecase(repo)

	resp, err := u.SuggestReception(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(11), resp.ID)
	assert.Equal(t, "Reception B", resp.Name)
}

func TestSuggestReceptionEmptyFloor(t *testing.T) {
	repo := &fakeFacilityRepo{
		rooms: map[uint]*entity.Room{
			7: {ID: 7, RoomNumber: "204", FloorID: 3},
		},
		receptions: map[uint][]entity.Reception{},
	}
	u := newFacilityUsecase(repo)

	_, err := u.SuggestReception(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoReceptionOnFloor)
}

func TestSuggestReceptionUnknownRoom(t *testing.T) {
	u := newFacilityUsecase(&fakeFacilityRepo{rooms: map[uint]*entity.Room{}})

	_, err := u.SuggestReception(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
