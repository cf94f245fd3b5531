package upgrade_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/errors"
	"github.com/KirkDiggler/equipbest/internal/notify"
	"github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade"
	upgrademock "github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade/mock"
	"github.com/KirkDiggler/equipbest/internal/pkg/clock"
	"github.com/KirkDiggler/equipbest/internal/pkg/idgen"
	"github.com/KirkDiggler/equipbest/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockHost     *upgrademock.MockHost
	mockNotifier *upgrademock.MockNotifier
	scores       tableScorer
	now          time.Time
	orchestrator upgrade.Service
	profile      *equipment.Profile
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHost = upgrademock.NewMockHost(s.ctrl)
	s.mockNotifier = upgrademock.NewMockNotifier(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.scores = tableScorer{
		"old_sword": 8, "sword": 12, "greatsword": 20,
		"lance": 10, "pike": 30,
		"courser": 5,
		"old_helm": 4, "helm": 9, "great_helm": 14,
	}

	var err error
	s.orchestrator, err = upgrade.NewOrchestrator(&upgrade.Config{
		Scorer:      s.scores,
		Notifier:    s.mockNotifier,
		IDGenerator: idgen.NewSequential("transfer"),
		Clock:       clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)

	s.profile = testutils.CreateTestProfile()
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) transfer(
	id string,
	from, to equipment.Location,
	element equipment.Element,
	fromSlot, toSlot equipment.Slot,
) equipment.TransferCommand {
	return equipment.TransferCommand{
		ID:          id,
		Quantity:    1,
		From:        from,
		To:          to,
		Element:     element,
		FromSlot:    fromSlot,
		ToSlot:      toSlot,
		CharacterID: s.profile.Character.ID,
		QueuedAt:    s.now,
	}
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name string
		cfg  *upgrade.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing scorer", cfg: &upgrade.Config{Notifier: s.mockNotifier, IDGenerator: idgen.NewSequential("t")}},
		{name: "missing notifier", cfg: &upgrade.Config{Scorer: s.scores, IDGenerator: idgen.NewSequential("t")}},
		{name: "missing id generator", cfg: &upgrade.Config{Scorer: s.scores, Notifier: s.mockNotifier}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := upgrade.NewOrchestrator(tc.cfg)
			s.Error(err)
			s.Nil(svc)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestPlanSlotPreconditions() {
	s.Run("nil input", func() {
		_, err := s.orchestrator.PlanSlot(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil profile", func() {
		_, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{Slot: equipment.SlotHead})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("profile without settings", func() {
		_, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
			Profile: &equipment.Profile{Character: s.profile.Character},
			Slot:    equipment.SlotHead,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("invalid slot", func() {
		_, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{Profile: s.profile, Slot: equipment.SlotNone})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestPlanSlotUsageMismatchExcludesHigherScore() {
	current := testutils.NewWeapon("old_sword", "sword", "one_handed").Element()
	sword := testutils.NewWeapon("sword", "sword", "one_handed")
	greatsword := testutils.NewWeapon("greatsword", "sword", "two_handed")

	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile: s.profile,
		Slot:    equipment.SlotWeapon0,
		Current: current,
		Right:   []equipment.Stack{greatsword.Stack(), sword.Stack()},
	})
	s.Require().NoError(err)

	s.Equal("sword", out.Decision.Winner.ID())
	s.Equal(equipment.PoolRight, out.Decision.Source)
	s.Equal(notify.TokenWeapon0, out.Message)
}

func (s *OrchestratorTestSuite) TestPlanSlotEmptyMountTakesAnyEligibleMount() {
	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile: s.profile,
		Slot:    equipment.SlotHorse,
		Current: equipment.Empty(),
		Left:    []equipment.Stack{horse("courser").Stack()},
	})
	s.Require().NoError(err)

	s.Equal("courser", out.Decision.Winner.ID())
	s.Equal(equipment.PoolLeft, out.Decision.Source)

	// Nothing to unequip, so only the equip transfer from the other inventory
	s.Require().Len(out.Transfers, 1)
	s.Equal(s.transfer("transfer_1",
		equipment.LocationOtherInventory, equipment.LocationEquipment,
		out.Decision.Winner, equipment.SlotNone, equipment.SlotHorse,
	), out.Transfers[0])
	s.Equal(notify.TokenHorse, out.Message)
}

func (s *OrchestratorTestSuite) TestPlanSlotLockedLeftPool() {
	s.profile.Settings.LeftLocked = true

	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile: s.profile,
		Slot:    equipment.SlotHead,
		Current: helm("old_helm").Element(),
		Left:    []equipment.Stack{helm("great_helm").Stack()},
		Right:   []equipment.Stack{helm("helm").Stack()},
	})
	s.Require().NoError(err)

	s.Equal("helm", out.Decision.Winner.ID())
	s.Equal(equipment.PoolRight, out.Decision.Source)
}

func (s *OrchestratorTestSuite) TestPlanSlotBothPoolsLocked() {
	s.profile.Settings.LeftLocked = true
	s.profile.Settings.RightLocked = true

	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile: s.profile,
		Slot:    equipment.SlotHead,
		Current: helm("old_helm").Element(),
		Left:    []equipment.Stack{helm("great_helm").Stack()},
		Right:   []equipment.Stack{helm("helm").Stack()},
	})
	s.Require().NoError(err)

	s.False(out.Decision.HasWinner())
	s.Empty(out.Transfers)
	s.Empty(out.Message)
}

func (s *OrchestratorTestSuite) TestPlanSlotCouchVeto() {
	current := testutils.NewWeapon("lance", "polearm", "polearm_pike").WithWeapon("polearm", "polearm_couch").Element()
	pike := testutils.NewWeapon("pike", "polearm", "polearm_pike")

	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile: s.profile,
		Slot:    equipment.SlotWeapon1,
		Current: current,
		Left:    []equipment.Stack{pike.Stack()},
		Right:   []equipment.Stack{pike.Stack()},
	})
	s.Require().NoError(err)

	s.False(out.Decision.HasWinner())
	s.Empty(out.Transfers)
}

func (s *OrchestratorTestSuite) TestPlanSlotUnequipsBeforeEquip() {
	current := helm("old_helm").Element()

	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile:  s.profile,
		Slot:     equipment.SlotHead,
		Current:  current,
		Left:     []equipment.Stack{helm("great_helm").Civilian().Stack()},
		Civilian: true,
	})
	s.Require().NoError(err)

	unequip := s.transfer("transfer_1",
		equipment.LocationEquipment, equipment.LocationPlayerInventory,
		current, equipment.SlotHead, equipment.SlotNone,
	)
	unequip.Civilian = true
	equip := s.transfer("transfer_2",
		equipment.LocationOtherInventory, equipment.LocationEquipment,
		out.Decision.Winner, equipment.SlotNone, equipment.SlotHead,
	)
	equip.Civilian = true

	s.Equal([]equipment.TransferCommand{unequip, equip}, out.Transfers)
	s.Equal(notify.TokenHead, out.Message)
}

func (s *OrchestratorTestSuite) TestPlanSlotTieBetweenPoolsGoesRight() {
	out, err := s.orchestrator.PlanSlot(s.ctx, &upgrade.PlanSlotInput{
		Profile: s.profile,
		Slot:    equipment.SlotHead,
		Current: equipment.Empty(),
		Left:    []equipment.Stack{helm("helm").Stack()},
		Right:   []equipment.Stack{helm("helm").Stack()},
	})
	s.Require().NoError(err)

	s.Equal(equipment.PoolRight, out.Decision.Source)
	s.Require().Len(out.Transfers, 1)
	s.Equal(equipment.LocationPlayerInventory, out.Transfers[0].From)
}

func (s *OrchestratorTestSuite) TestEquipSlotAppliesInOrder() {
	current := helm("old_helm").Element()
	candidate := helm("great_helm")
	set := equipment.NewEquipment(map[equipment.Slot]*equipment.Item{equipment.SlotHead: current.Item})

	unequip := s.transfer("transfer_1",
		equipment.LocationEquipment, equipment.LocationPlayerInventory,
		current, equipment.SlotHead, equipment.SlotNone,
	)
	equip := s.transfer("transfer_2",
		equipment.LocationPlayerInventory, equipment.LocationEquipment,
		candidate.Element(), equipment.SlotNone, equipment.SlotHead,
	)

	gomock.InOrder(
		s.mockHost.EXPECT().Equipment(gomock.Any(), false).Return(set, nil),
		s.mockHost.EXPECT().Pools(gomock.Any(), equipment.SlotHead).
			Return(nil, []equipment.Stack{candidate.Stack()}, nil),
		s.mockHost.EXPECT().AddTransferCommand(gomock.Any(), unequip).Return(nil),
		s.mockHost.EXPECT().AddTransferCommand(gomock.Any(), equip).Return(nil),
		s.mockNotifier.EXPECT().Notify(gomock.Any(), notify.TokenHead, testutils.TestCharacterName),
		s.mockHost.EXPECT().RemoveZeroCounts(gomock.Any()).Return(nil),
	)

	out, err := s.orchestrator.EquipSlot(s.ctx, &upgrade.EquipSlotInput{
		Profile: s.profile,
		Host:    s.mockHost,
		Slot:    equipment.SlotHead,
	})
	s.Require().NoError(err)
	s.Equal(equipment.PoolRight, out.Decision.Source)
	s.Equal([]equipment.TransferCommand{unequip, equip}, out.Transfers)
}

func (s *OrchestratorTestSuite) TestEquipSlotSinkFailuresAreNotRetried() {
	set := &equipment.Equipment{}

	s.mockHost.EXPECT().Equipment(gomock.Any(), false).Return(set, nil)
	s.mockHost.EXPECT().Pools(gomock.Any(), equipment.SlotHead).
		Return([]equipment.Stack{helm("helm").Stack()}, nil, nil)
	s.mockHost.EXPECT().AddTransferCommand(gomock.Any(), gomock.Any()).
		Return(errors.Unavailable("inventory busy")).Times(1)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), notify.TokenHead, testutils.TestCharacterName)
	s.mockHost.EXPECT().RemoveZeroCounts(gomock.Any()).Return(errors.Internal("boom"))

	out, err := s.orchestrator.EquipSlot(s.ctx, &upgrade.EquipSlotInput{
		Profile: s.profile,
		Host:    s.mockHost,
		Slot:    equipment.SlotHead,
	})
	s.Require().NoError(err)
	s.Equal("helm", out.Decision.Winner.ID())
}

func (s *OrchestratorTestSuite) TestEquipSlotNoWinnerHasNoSideEffects() {
	s.mockHost.EXPECT().Equipment(gomock.Any(), true).Return(&equipment.Equipment{}, nil)
	s.mockHost.EXPECT().Pools(gomock.Any(), equipment.SlotHead).
		Return([]equipment.Stack{helm("helm").Stack()}, nil, nil)

	// Battle helmet offered for the civilian set
	out, err := s.orchestrator.EquipSlot(s.ctx, &upgrade.EquipSlotInput{
		Profile:  s.profile,
		Host:     s.mockHost,
		Slot:     equipment.SlotHead,
		Civilian: true,
	})
	s.Require().NoError(err)
	s.False(out.Decision.HasWinner())
}

func (s *OrchestratorTestSuite) TestEquipSlotHostErrors() {
	s.Run("equipment read fails", func() {
		s.mockHost.EXPECT().Equipment(gomock.Any(), false).Return(nil, errors.Unavailable("down"))

		_, err := s.orchestrator.EquipSlot(s.ctx, &upgrade.EquipSlotInput{
			Profile: s.profile, Host: s.mockHost, Slot: equipment.SlotHead,
		})
		s.Error(err)
		s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	})

	s.Run("missing host", func() {
		_, err := s.orchestrator.EquipSlot(s.ctx, &upgrade.EquipSlotInput{Profile: s.profile, Slot: equipment.SlotHead})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestEquipCharacterRunsSlotsInOrder() {
	oldSword := testutils.NewWeapon("old_sword", "sword", "one_handed")
	sword := testutils.NewWeapon("sword", "sword", "one_handed")
	set := equipment.NewEquipment(map[equipment.Slot]*equipment.Item{
		equipment.SlotWeapon0: oldSword.Build(),
		equipment.SlotHead:    helm("old_helm").Build(),
	})

	s.mockHost.EXPECT().Equipment(gomock.Any(), false).Return(set, nil).AnyTimes()

	var evaluated []equipment.Slot
	s.mockHost.EXPECT().Pools(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, slot equipment.Slot) ([]equipment.Stack, []equipment.Stack, error) {
			evaluated = append(evaluated, slot)
			switch slot {
			case equipment.SlotWeapon0:
				return nil, []equipment.Stack{sword.Stack()}, nil
			case equipment.SlotHorse:
				return []equipment.Stack{horse("courser").Stack()}, nil, nil
			default:
				return nil, nil, nil
			}
		}).AnyTimes()

	s.mockHost.EXPECT().AddTransferCommand(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	gomock.InOrder(
		s.mockNotifier.EXPECT().Notify(gomock.Any(), notify.TokenWeapon0, testutils.TestCharacterName),
		s.mockNotifier.EXPECT().Notify(gomock.Any(), notify.TokenHorse, testutils.TestCharacterName),
	)
	s.mockHost.EXPECT().RemoveZeroCounts(gomock.Any()).Return(nil).Times(2)
	s.mockHost.EXPECT().RefreshInformationValues(gomock.Any()).Return(nil).Times(1)

	out, err := s.orchestrator.EquipCharacter(s.ctx, &upgrade.EquipCharacterInput{
		Profile: s.profile,
		Host:    s.mockHost,
	})
	s.Require().NoError(err)

	s.Equal([]equipment.Slot{
		equipment.SlotWeapon0,
		equipment.SlotHead, equipment.SlotBody, equipment.SlotLeg,
		equipment.SlotGloves, equipment.SlotCape, equipment.SlotHorse,
	}, evaluated)
	s.Equal([]equipment.Slot{
		equipment.SlotWeapon1, equipment.SlotWeapon2, equipment.SlotWeapon3,
		equipment.SlotHorseHarness,
	}, out.Skipped)
	s.Len(out.Decisions, len(evaluated))
	s.Len(out.Transfers, 3)
	s.Equal(equipment.LocationEquipment, out.Transfers[0].From)
	s.Equal("sword", out.Transfers[1].Element.ID())
	s.Equal("courser", out.Transfers[2].Element.ID())
}

func (s *OrchestratorTestSuite) TestEquipCharacterEvaluatesHarnessWithHorse() {
	set := equipment.NewEquipment(map[equipment.Slot]*equipment.Item{
		equipment.SlotHorse: horse("courser").Build(),
	})
	s.mockHost.EXPECT().Equipment(gomock.Any(), false).Return(set, nil).AnyTimes()

	var evaluated []equipment.Slot
	s.mockHost.EXPECT().Pools(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, slot equipment.Slot) ([]equipment.Stack, []equipment.Stack, error) {
			evaluated = append(evaluated, slot)
			return nil, nil, nil
		}).AnyTimes()
	s.mockHost.EXPECT().RefreshInformationValues(gomock.Any()).Return(nil)

	out, err := s.orchestrator.EquipCharacter(s.ctx, &upgrade.EquipCharacterInput{
		Profile: s.profile,
		Host:    s.mockHost,
	})
	s.Require().NoError(err)
	s.Contains(evaluated, equipment.SlotHorseHarness)
	s.NotContains(out.Skipped, equipment.SlotHorseHarness)
	s.Empty(out.Transfers)
}

func (s *OrchestratorTestSuite) TestEquipCharacterFailures() {
	s.Run("nil profile", func() {
		_, err := s.orchestrator.EquipCharacter(s.ctx, &upgrade.EquipCharacterInput{Host: s.mockHost})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("pool read aborts the run without refresh", func() {
		set := equipment.NewEquipment(map[equipment.Slot]*equipment.Item{
			equipment.SlotWeapon0: testutils.NewWeapon("old_sword", "sword", "one_handed").Build(),
		})
		s.mockHost.EXPECT().Equipment(gomock.Any(), false).Return(set, nil)
		s.mockHost.EXPECT().Pools(gomock.Any(), equipment.SlotWeapon0).
			Return(nil, nil, errors.Unavailable("inventory offline"))

		_, err := s.orchestrator.EquipCharacter(s.ctx, &upgrade.EquipCharacterInput{
			Profile: s.profile,
			Host:    s.mockHost,
		})
		s.Error(err)
		s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	})

	s.Run("canceled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		_, err := s.orchestrator.EquipCharacter(ctx, &upgrade.EquipCharacterInput{
			Profile: s.profile,
			Host:    s.mockHost,
		})
		s.Equal(errors.CodeCanceled, errors.GetCode(err))
	})
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
