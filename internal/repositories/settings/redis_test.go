package settings_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/redis"
	"github.com/KirkDiggler/equipbest/internal/repositories/settings"
	settingsmock "github.com/KirkDiggler/equipbest/internal/repositories/settings/mock"
	"github.com/KirkDiggler/equipbest/internal/testutils"
)

const testCharacter = "Aldric"

type RedisSettingsTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	repo    settings.Repository
	ctx     context.Context
}

func (s *RedisSettingsTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := settings.NewRedis(&settings.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSettingsTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisSettingsTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *settings.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{name: "success with valid config", config: &settings.RedisConfig{Client: s.client}},
		{name: "error with nil config", config: nil, wantErr: true, errMsg: "config cannot be nil"},
		{name: "error with nil client", config: &settings.RedisConfig{}, wantErr: true, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := settings.NewRedis(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisSettingsTestSuite) TestUpdateThenGet() {
	stored := equipment.DefaultSettings()
	stored.Armor[5].BodyArmor = 4
	stored.Mount.Speed = 3
	stored.RightLocked = true

	_, err := s.repo.Update(s.ctx, settings.UpdateInput{CharacterName: testCharacter, Settings: stored})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, settings.GetInput{CharacterName: testCharacter})
	s.Require().NoError(err)
	s.Equal(stored, out.Settings)

	exists, err := s.client.Exists(s.ctx, settings.GetKey(testCharacter), settings.GlobalKey()).Result()
	s.Require().NoError(err)
	s.Equal(int64(2), exists)
}

func (s *RedisSettingsTestSuite) TestLockFlagsAreShared() {
	first := equipment.DefaultSettings()
	first.LeftLocked = true
	_, err := s.repo.Update(s.ctx, settings.UpdateInput{CharacterName: testCharacter, Settings: first})
	s.Require().NoError(err)

	second := equipment.DefaultSettings()
	second.Weapon[0].SwingDamage = 5
	_, err = s.repo.Update(s.ctx, settings.UpdateInput{CharacterName: "Brienne", Settings: second})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, settings.GetInput{CharacterName: testCharacter})
	s.Require().NoError(err)
	s.False(out.Settings.LeftLocked, "last update wins for the global flags")
	s.Equal(float32(1), out.Settings.Weapon[0].SwingDamage)
}

func (s *RedisSettingsTestSuite) TestGetErrors() {
	s.Run("empty name", func() {
		_, err := s.repo.Get(s.ctx, settings.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		_, err := s.repo.Get(s.ctx, settings.GetInput{CharacterName: "nobody"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("corrupt data", func() {
		s.Require().NoError(s.client.Set(s.ctx, settings.GetKey("broken"), "{not json", 0).Err())
		_, err := s.repo.Get(s.ctx, settings.GetInput{CharacterName: "broken"})
		s.True(errors.IsInternal(err))
	})
}

func (s *RedisSettingsTestSuite) TestUpdateValidation() {
	_, err := s.repo.Update(s.ctx, settings.UpdateInput{CharacterName: testCharacter})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, settings.UpdateInput{Settings: equipment.DefaultSettings()})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisSettingsTestSuite) TestDelete() {
	_, err := s.repo.Delete(s.ctx, settings.DeleteInput{CharacterName: testCharacter})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, settings.UpdateInput{CharacterName: testCharacter, Settings: equipment.DefaultSettings()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, settings.DeleteInput{CharacterName: testCharacter})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, settings.GetInput{CharacterName: testCharacter})
	s.True(errors.IsNotFound(err))
}

func TestRedisSettingsSuite(t *testing.T) {
	suite.Run(t, new(RedisSettingsTestSuite))
}

type LoadTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	repo   *settingsmock.MockRepository
	ctx    context.Context
	stored *equipment.Settings
}

func (s *LoadTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = settingsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	s.stored = equipment.DefaultSettings()
	s.stored.LeftLocked = true
}

func (s *LoadTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LoadTestSuite) TestStored() {
	s.repo.EXPECT().Get(gomock.Any(), settings.GetInput{CharacterName: testCharacter}).
		Return(&settings.GetOutput{Settings: s.stored}, nil)

	got, err := settings.Load(s.ctx, s.repo, testCharacter)
	s.Require().NoError(err)
	s.Same(s.stored, got)
}

func (s *LoadTestSuite) TestDefaultsWhenMissing() {
	s.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.NotFound("missing"))

	got, err := settings.Load(s.ctx, s.repo, testCharacter)
	s.Require().NoError(err)
	s.Equal(equipment.DefaultSettings(), got)
}

func (s *LoadTestSuite) TestStorageFailure() {
	s.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("down"))

	_, err := settings.Load(s.ctx, s.repo, testCharacter)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

func TestGetRedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: -1})
	if err != nil {
		t.Fatal(err)
	}
	mr.Close()

	repo, err := settings.NewRedis(&settings.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	_, err = repo.Get(context.Background(), settings.GetInput{CharacterName: testCharacter})
	if !errors.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
