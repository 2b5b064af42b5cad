package seeds

import (
	"context"
	"embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	categoryDto "ewm_backend/internals/features/events/categories/dto"
	categoryService "ewm_backend/internals/features/events/categories/service"
	userDto "ewm_backend/internals/features/users/user/dto"
	userService "ewm_backend/internals/features/users/user/service"
	helper "ewm_backend/internals/helpers"
	"ewm_backend/internals/repository"
)

//go:embed data/*.json
var dataFS embed.FS

// RunAllSeeds loads the demo categories and users. Records that already
// exist are skipped, so it is safe to run on every start.
func RunAllSeeds(ctx context.Context, store repository.Store, log *zap.Logger) error {
	log = log.Named("seeds")

	if err := SeedCategories(ctx, categoryService.NewCategoryService(store, log), log); err != nil {
		return err
	}
	if err := SeedUsers(ctx, userService.NewUserService(store, log), log); err != nil {
		return err
	}
	return nil
}

func SeedCategories(ctx context.Context, svc *categoryService.CategoryService, log *zap.Logger) error {
	var rows []categoryDto.CategoryRequest
	if err := readJSON("data/categories.json", &rows); err != nil {
		return err
	}
	created := 0
	for _, r := range rows {
		ok, err := insert(func() error {
			_, err := svc.CreateCategory(ctx, r)
			return err
		}, r)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", r.Name, err)
		}
		if ok {
			created++
		}
	}
	log.Info("categories seeded", zap.Int("created", created), zap.Int("total", len(rows)))
	return nil
}

func SeedUsers(ctx context.Context, svc *userService.UserService, log *zap.Logger) error {
	var rows []userDto.NewUserRequest
	if err := readJSON("data/users.json", &rows); err != nil {
		return err
	}
	created := 0
	for _, r := range rows {
		ok, err := insert(func() error {
			_, err := svc.CreateUser(ctx, r)
			return err
		}, r)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", r.Email, err)
		}
		if ok {
			created++
		}
	}
	log.Info("users seeded", zap.Int("created", created), zap.Int("total", len(rows)))
	return nil
}

// insert validates row, runs create and reports whether a record was added.
// A conflict means the record is already there.
func insert(create func() error, row any) (bool, error) {
	if err := helper.ValidateStruct(row); err != nil {
		return false, err
	}
	err := create()
	if helper.StatusOf(err) == fiber.StatusConflict {
		return false, nil
	}
	return err == nil, err
}

func readJSON(name string, out any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := sonic.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
