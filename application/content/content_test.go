package content_test

import (
	"context"
	"errors"
	"testing"

	appcontent "github.com/ayoubkd/party-membership/application/content"
	"github.com/ayoubkd/party-membership/constant"
	contentmocks "github.com/ayoubkd/party-membership/mocks/repository/content"
	"github.com/ayoubkd/party-membership/model"
	cerr "github.com/ayoubkd/party-membership/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestContentApp_ListActivities(t *testing.T) {
	t.Run("success: public listing only sees published rows", func(t *testing.T) {
		repo := contentmocks.NewContentRepository(t)
		repo.
			On("ListActivities", mock.Anything, true, 1, 10).
			Return([]model.ActivityEntity{{ID: 1, Title: "Meeting", Published: true}}, int64(1), nil).
			Once()

		app := appcontent.NewContentApp(repo)
		got, err := app.ListActivities(context.Background(), false, 0, 0)
		if err != nil {
			t.Fatalf("ListActivities() error = %v", err)
		}
		if got.TotalCount != 1 || got.Page != 1 || got.PerPage != 10 {
			t.Fatalf("ListActivities() = %+v", got)
		}
	})

	t.Run("success: back office sees drafts too", func(t *testing.T) {
		repo := contentmocks.NewContentRepository(t)
		repo.
			On("ListActivities", mock.Anything, false, 2, 5).
			Return([]model.ActivityEntity{{ID: 2, Title: "Draft"}}, int64(6), nil).
			Once()

		app := appcontent.NewContentApp(repo)
		got, err := app.ListActivities(context.Background(), true, 2, 5)
		if err != nil {
			t.Fatalf("ListActivities() error = %v", err)
		}
		if got.Page != 2 || got.PerPage != 5 {
			t.Fatalf("ListActivities() = %+v", got)
		}
	})
}

func TestContentApp_GetActivity(t *testing.T) {
	t.Run("error: missing activity", func(t *testing.T) {
		repo := contentmocks.NewContentRepository(t)
		repo.
			On("GetActivity", mock.Anything, uint64(9)).
			Return(nil, nil).
			Once()

		app := appcontent.NewContentApp(repo)
		_, err := app.GetActivity(context.Background(), 9)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s", ce.ErrorCode())
		}
	})
}

func TestContentApp_UpdateActivity(t *testing.T) {
	t.Run("success: replaces mutable fields", func(t *testing.T) {
		repo := contentmocks.NewContentRepository(t)
		repo.
			On("GetActivity", mock.Anything, uint64(5)).
			Return(&model.ActivityEntity{ID: 5, Title: "Old", Published: false}, nil).
			Once()
		repo.
			On("UpdateActivity", mock.Anything, mock.MatchedBy(func(ent *model.ActivityEntity) bool {
				return ent.ID == 5 && ent.Title == "New title" && ent.Published
			})).
			Return(nil).
			Once()

		app := appcontent.NewContentApp(repo)
		err := app.UpdateActivity(context.Background(), 5, &model.ActivityRequest{
			Title:     "New title",
			Body:      "Updated body",
			Published: true,
		})
		if err != nil {
			t.Fatalf("UpdateActivity() error = %v", err)
		}
	})
}

func TestContentApp_CreateLeader(t *testing.T) {
	t.Run("success: assigns the inserted id", func(t *testing.T) {
		repo := contentmocks.NewContentRepository(t)
		repo.
			On("InsertLeader", mock.Anything, mock.MatchedBy(func(ent *model.LeaderEntity) bool {
				return ent.FullName == "Karim Ziani" && ent.Rank == 1
			})).
			Return(uint64(8), nil).
			Once()

		app := appcontent.NewContentApp(repo)
		got, err := app.CreateLeader(context.Background(), &model.LeaderRequest{
			FullName: "Karim Ziani",
			Role:     "Secretary General",
			Rank:     1,
		})
		if err != nil {
			t.Fatalf("CreateLeader() error = %v", err)
		}
		if got.ID != 8 {
			t.Fatalf("leader id = %d", got.ID)
		}
	})
}
