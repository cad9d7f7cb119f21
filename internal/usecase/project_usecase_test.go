package usecase

import (
	"context"
	"errors"
	"testing"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"
	mock_interfaces "inhouse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "  ", Key: "P1"})
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("key too long", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "Website", Key: "ABCDEFGHIJKLM"})
		if !errors.Is(err, ErrInvalidProjectKey) {
			t.Fatalf("expected ErrInvalidProjectKey, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "Website", Key: "WEB", Status: 9})
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("key taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "WEB").Return(entities.Project{ID: "p0"}, nil)

		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "Website", Key: "WEB"})
		if !errors.Is(err, ErrProjectKeyTaken) {
			t.Fatalf("expected ErrProjectKeyTaken, got %v", err)
		}
	})

	t.Run("master not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "WEB").Return(entities.Project{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Project{}, nil)

		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "Website", Key: "WEB", MasterID: "m1"})
		if !errors.Is(err, ErrMasterProjectNotFound) {
			t.Fatalf("expected ErrMasterProjectNotFound, got %v", err)
		}
	})

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "WEB2").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, interfaces.ErrNameTaken)

		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "Website", Key: "WEB2"})
		if !errors.Is(err, ErrProjectNameTaken) {
			t.Fatalf("expected ErrProjectNameTaken, got %v", err)
		}
	})

	t.Run("key claimed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "WEB").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, interfaces.ErrKeyTaken)

		_, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: "Website", Key: "WEB"})
		if !errors.Is(err, ErrProjectKeyTaken) {
			t.Fatalf("expected ErrProjectKeyTaken, got %v", err)
		}
	})

	t.Run("create success references itself as master", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "WEB").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.MasterID != p.ID {
					t.Fatalf("expected self master, got %+v", p)
				}
				if p.Status != entities.ProjectStatusOpen || p.ManagerID != "alice" {
					t.Fatalf("unexpected defaults: %+v", p)
				}
				if p.CreatedBy != "alice" || p.Created.IsZero() {
					t.Fatalf("expected audit fields, got %+v", p.Audit)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), "alice", CreateProjectInput{Name: " Website ", Key: " WEB "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Website" || res.Key != "WEB" {
			t.Fatalf("unexpected project: %+v", res)
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "p1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "alice", "p1", 0)
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("close project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Status: entities.ProjectStatusOpen}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Status != entities.ProjectStatusClosed || p.ModifiedBy != "bob" {
					t.Fatalf("unexpected project: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.UpdateStatus(context.Background(), "bob", "p1", entities.ProjectStatusClosed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsOpen() {
			t.Fatalf("expected closed project")
		}
	})

	t.Run("unchanged status skips update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Status: entities.ProjectStatusIdle}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "bob", "p1", entities.ProjectStatusIdle); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_Copy(t *testing.T) {
	src := entities.Project{ID: "p1", Name: "Website", Key: "WEB", Status: entities.ProjectStatusOpen, MasterID: "p1"}

	t.Run("copy with steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		stepRepo := mock_interfaces.NewMockIProjectStepRepository(ctrl)
		positions := mock_interfaces.NewMockIPositionRepository(ctrl)
		uc := NewProjectUseCase(repo, stepRepo, positions)

		var newID string
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(src, nil)
		repo.EXPECT().Count(gomock.Any()).Return(4, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "PR5").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Name != "Copy of 'Website'" || p.Key != "PR5" {
					t.Fatalf("unexpected copy: %+v", p)
				}
				if p.ID == "p1" || p.MasterID != p.ID {
					t.Fatalf("expected new self mastered project, got %+v", p)
				}
				newID = p.ID
				return p, nil
			},
		)
		stepRepo.EXPECT().ListByProject(gomock.Any(), "p1").Return([]entities.ProjectStep{
			{ID: "s1", ProjectID: "p1", Name: "Design", Status: entities.StepStatusClosed, Position: 3},
			{ID: "s2", ProjectID: "p1", Name: "Build", Status: entities.StepStatusOpen, Position: 7},
		}, nil)
		gomock.InOrder(
			positions.EXPECT().MaxPosition(gomock.Any(), gomock.Any()).Return(0, nil),
			positions.EXPECT().MaxPosition(gomock.Any(), gomock.Any()).Return(1, nil),
		)
		var created []entities.ProjectStep
		stepRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProjectStep{})).Times(2).DoAndReturn(
			func(_ context.Context, s entities.ProjectStep) (entities.ProjectStep, error) {
				created = append(created, s)
				return s, nil
			},
		)

		res, err := uc.Copy(context.Background(), "alice", "p1", CopyProjectInput{WithSteps: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != newID {
			t.Fatalf("unexpected result %+v", res)
		}
		if len(created) != 2 || created[0].Name != "Design" || created[1].Name != "Build" {
			t.Fatalf("unexpected steps %+v", created)
		}
		for i, s := range created {
			if s.ProjectID != newID || s.Position != i+1 || !s.IsOpen() {
				t.Fatalf("unexpected step %+v", s)
			}
		}
	})

	t.Run("copy with custom name and no steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(src, nil)
		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "PR1").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)

		res, err := uc.Copy(context.Background(), "alice", "p1", CopyProjectInput{Name: "Relaunch"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Relaunch" {
			t.Fatalf("expected custom name, got %q", res.Name)
		}
	})

	t.Run("skips generated keys already in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(src, nil)
		repo.EXPECT().Count(gomock.Any()).Return(1, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "PR2").Return(entities.Project{ID: "p2", Key: "PR2"}, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "PR3").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)

		res, err := uc.Copy(context.Background(), "alice", "p1", CopyProjectInput{Name: "Relaunch"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Key != "PR3" {
			t.Fatalf("expected PR3, got %q", res.Key)
		}
	})

	t.Run("step position conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		stepRepo := mock_interfaces.NewMockIProjectStepRepository(ctrl)
		positions := mock_interfaces.NewMockIPositionRepository(ctrl)
		uc := NewProjectUseCase(repo, stepRepo, positions)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(src, nil)
		repo.EXPECT().Count(gomock.Any()).Return(1, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "PR2").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		stepRepo.EXPECT().ListByProject(gomock.Any(), "p1").Return([]entities.ProjectStep{{ID: "s1", Name: "Design"}}, nil)
		positions.EXPECT().MaxPosition(gomock.Any(), gomock.Any()).Return(0, nil)
		stepRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProjectStep{}, interfaces.ErrPositionTaken)

		_, err := uc.Copy(context.Background(), "alice", "p1", CopyProjectInput{WithSteps: true})
		if !errors.Is(err, ErrPositionConflict) {
			t.Fatalf("expected ErrPositionConflict, got %v", err)
		}
	})
}
