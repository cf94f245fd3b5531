package upgrade_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/equipbest/internal/entities/equipment"
	"github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade"
	upgrademock "github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade/mock"
	"github.com/KirkDiggler/equipbest/internal/testutils"
)

// tableScorer scores items by id, ignoring the filter
type tableScorer map[string]float32

func (t tableScorer) score(item *equipment.Item) float32 {
	if item == nil {
		return equipment.EmptyScore
	}
	return t[item.ID]
}

func (t tableScorer) ScoreArmor(item *equipment.Item, _ equipment.ArmorFilter) float32 {
	return t.score(item)
}

func (t tableScorer) ScoreWeapon(item *equipment.Item, _ equipment.WeaponFilter) float32 {
	return t.score(item)
}

func (t tableScorer) ScoreMount(item *equipment.Item, _ equipment.MountFilter) float32 {
	return t.score(item)
}

func helm(id string) *testutils.ItemBuilder {
	return testutils.NewItem(id, equipment.SlotHead).WithArmor(10, 0, 0, 0)
}

func horse(id string) *testutils.ItemBuilder {
	return testutils.NewItem(id, equipment.SlotHorse).WithHorse("horse", 40)
}

type SelectionTestSuite struct {
	suite.Suite
	profile *equipment.Profile
}

func (s *SelectionTestSuite) SetupTest() {
	s.profile = testutils.CreateTestProfile()
}

func (s *SelectionTestSuite) TestIsEligible() {
	character := s.profile.Character
	checker := equipment.DefaultSkillChecker

	notEquipable := helm("helm").Stack()
	notEquipable.Equipable = false

	testCases := []struct {
		name     string
		stack    equipment.Stack
		civilian bool
		expected bool
	}{
		{name: "plain helmet", stack: helm("helm").Stack(), expected: true},
		{name: "empty stack", stack: equipment.Stack{Count: 1, Equipable: true}, expected: false},
		{name: "camel mount", stack: testutils.NewItem("camel", equipment.SlotHorse).WithHorse("camel", 30).Stack(), expected: false},
		{name: "camel harness", stack: testutils.NewItem("camel_saddle_light", equipment.SlotHorseHarness).WithArmor(0, 8, 0, 0).Stack(), expected: false},
		{name: "not equipable", stack: notEquipable, expected: false},
		{name: "battle item in civilian set", stack: helm("helm").Stack(), civilian: true, expected: false},
		{name: "civilian item in civilian set", stack: helm("hood").Civilian().Stack(), civilian: true, expected: true},
		{name: "civilian item in battle set", stack: helm("hood").Civilian().Stack(), expected: true},
		{name: "skill too low", stack: horse("warhorse").WithSkill("riding", 60).Stack(), expected: false},
		{name: "skill exactly met", stack: horse("palfrey").WithSkill("riding", 50).Stack(), expected: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, upgrade.IsEligible(tc.stack, character, tc.civilian, checker))
		})
	}
}

func (s *SelectionTestSuite) TestIsCompatible() {
	oneHanded := testutils.NewWeapon("arming_sword", "sword", "one_handed").Build()
	otherOneHanded := testutils.NewWeapon("falchion", "sword", "one_handed").Build()
	twoHanded := testutils.NewWeapon("greatsword", "sword", "two_handed").Build()
	axe := testutils.NewWeapon("axe", "axe", "one_handed").Build()
	lance := testutils.NewWeapon("lance", "polearm", "polearm_pike").WithWeapon("polearm", "polearm_couch").Build()
	pike := testutils.NewWeapon("pike", "polearm", "polearm_pike").Build()
	shieldless := helm("helm").Build()

	testCases := []struct {
		name      string
		candidate *equipment.Item
		current   *equipment.Item
		expected  bool
	}{
		{name: "same class and usage", candidate: otherOneHanded, current: oneHanded, expected: true},
		{name: "usage mismatch", candidate: twoHanded, current: oneHanded, expected: false},
		{name: "class mismatch", candidate: axe, current: oneHanded, expected: false},
		{name: "couch current rejects non-couch candidate", candidate: pike, current: lance, expected: false},
		{name: "couch candidate may replace non-couch current", candidate: lance, current: pike, expected: true},
		{name: "current is not a weapon", candidate: oneHanded, current: shieldless, expected: false},
		{name: "current empty", candidate: oneHanded, current: nil, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, upgrade.IsCompatible(tc.candidate, equipment.Of(tc.current)))
		})
	}
}

func (s *SelectionTestSuite) TestIsCompatibleSymmetricWithoutCouch() {
	items := []*equipment.Item{
		testutils.NewWeapon("a", "sword", "one_handed").Build(),
		testutils.NewWeapon("b", "sword", "two_handed").Build(),
		testutils.NewWeapon("c", "axe", "one_handed").Build(),
		testutils.NewWeapon("d", "sword", "one_handed").Build(),
	}

	for _, a := range items {
		for _, b := range items {
			s.Equal(
				upgrade.IsCompatible(a, equipment.Of(b)),
				upgrade.IsCompatible(b, equipment.Of(a)),
				"%s vs %s", a.ID, b.ID,
			)
		}
	}
}

func (s *SelectionTestSuite) TestComparable() {
	sword := testutils.NewWeapon("sword", "sword", "one_handed").Build()
	current := testutils.NewWeapon("old_sword", "sword", "one_handed").Element()

	s.True(upgrade.Comparable(sword, current, equipment.SlotWeapon2))
	s.False(upgrade.Comparable(sword, current, equipment.SlotHead))
	s.True(upgrade.Comparable(helm("helm").Build(), equipment.Empty(), equipment.SlotHead))
	s.False(upgrade.Comparable(helm("helm").Build(), equipment.Empty(), equipment.SlotBody))
	s.False(upgrade.Comparable(nil, current, equipment.SlotWeapon0))
}

func (s *SelectionTestSuite) TestValueDispatch() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	scorer := upgrademock.NewMockScorer(ctrl)
	selector := upgrade.NewSelector(scorer, nil)

	settings := equipment.DefaultSettings()
	settings.Armor[1].HeadArmor = 7
	settings.Armor[5].BodyArmor = 3
	settings.Weapon[2].SwingDamage = 9
	settings.Mount.Speed = 4

	cape := testutils.NewItem("cape", equipment.SlotCape).WithArmor(0, 2, 2, 0).Build()
	harness := testutils.NewItem("saddle", equipment.SlotHorseHarness).WithArmor(0, 12, 0, 0).Build()
	sword := testutils.NewWeapon("sword", "sword", "one_handed").Build()
	mount := horse("courser").Build()
	armoredWeapon := testutils.NewWeapon("spiked_shield", "shield", "shield").WithArmor(0, 0, 5, 0).Build()
	goods := testutils.NewItem("grain", equipment.SlotNone).Build()

	s.Run("empty always scores the sentinel", func() {
		s.Equal(equipment.EmptyScore, selector.Value(equipment.Empty(), equipment.SlotHead, settings))
		s.Equal(equipment.EmptyScore, selector.Value(equipment.Empty(), equipment.SlotHead, &equipment.Settings{}))
	})

	s.Run("armor uses the slot's armor filter", func() {
		scorer.EXPECT().ScoreArmor(cape, settings.Armor[1]).Return(float32(11))
		s.Equal(float32(11), selector.Value(equipment.Of(cape), equipment.SlotCape, settings))
	})

	s.Run("harness uses the last armor filter", func() {
		scorer.EXPECT().ScoreArmor(harness, settings.Armor[5]).Return(float32(6))
		s.Equal(float32(6), selector.Value(equipment.Of(harness), equipment.SlotHorseHarness, settings))
	})

	s.Run("weapon uses the slot's weapon filter", func() {
		scorer.EXPECT().ScoreWeapon(sword, settings.Weapon[2]).Return(float32(21))
		s.Equal(float32(21), selector.Value(equipment.Of(sword), equipment.SlotWeapon2, settings))
	})

	s.Run("mount uses the mount filter", func() {
		scorer.EXPECT().ScoreMount(mount, settings.Mount).Return(float32(33))
		s.Equal(float32(33), selector.Value(equipment.Of(mount), equipment.SlotHorse, settings))
	})

	s.Run("armor wins over weapon components", func() {
		scorer.EXPECT().ScoreArmor(armoredWeapon, settings.Armor[0]).Return(float32(2))
		s.Equal(float32(2), selector.Value(equipment.Of(armoredWeapon), equipment.SlotHead, settings))
	})

	s.Run("items without components score zero", func() {
		s.Equal(float32(0), selector.Value(equipment.Of(goods), equipment.SlotHead, settings))
	})
}

func (s *SelectionTestSuite) TestPickBest() {
	scores := tableScorer{
		"current": 10, "better": 15, "best": 20, "also_best": 20, "worse": 5, "zero": 0, "negative": -3,
	}
	selector := upgrade.NewSelector(scores, nil)
	current := helm("current").Element()

	s.Run("highest strictly greater candidate wins", func() {
		pool := []equipment.Stack{helm("worse").Stack(), helm("better").Stack(), helm("best").Stack()}
		s.Equal("best", selector.PickBest(pool, current, equipment.SlotHead, false, s.profile).ID())
	})

	s.Run("first candidate wins ties", func() {
		pool := []equipment.Stack{helm("best").Stack(), helm("also_best").Stack()}
		s.Equal("best", selector.PickBest(pool, current, equipment.SlotHead, false, s.profile).ID())

		reversed := []equipment.Stack{helm("also_best").Stack(), helm("best").Stack()}
		s.Equal("also_best", selector.PickBest(reversed, current, equipment.SlotHead, false, s.profile).ID())
	})

	s.Run("equal to current does not win", func() {
		pool := []equipment.Stack{helm("current").Stack()}
		s.True(selector.PickBest(pool, current, equipment.SlotHead, false, s.profile).IsEmpty())
	})

	s.Run("zero never wins even over an empty slot", func() {
		pool := []equipment.Stack{helm("zero").Stack()}
		s.True(selector.PickBest(pool, equipment.Empty(), equipment.SlotHead, false, s.profile).IsEmpty())
	})

	s.Run("any nonzero score beats the empty sentinel", func() {
		pool := []equipment.Stack{helm("negative").Stack()}
		s.Equal("negative", selector.PickBest(pool, equipment.Empty(), equipment.SlotHead, false, s.profile).ID())
	})

	s.Run("wrong slot tag is ignored", func() {
		pool := []equipment.Stack{testutils.NewItem("best", equipment.SlotBody).WithArmor(0, 10, 0, 0).Stack()}
		s.True(selector.PickBest(pool, current, equipment.SlotHead, false, s.profile).IsEmpty())
	})

	s.Run("is idempotent", func() {
		pool := []equipment.Stack{helm("better").Stack(), helm("best").Stack(), helm("also_best").Stack()}
		first := selector.PickBest(pool, current, equipment.SlotHead, false, s.profile)
		second := selector.PickBest(pool, current, equipment.SlotHead, false, s.profile)
		s.Equal(first, second)
	})
}

func (s *SelectionTestSuite) TestPickBestIgnoresExcludedItems() {
	scores := tableScorer{"courser": 30, "camel": 1000, "warhorse": 900}
	selector := upgrade.NewSelector(scores, nil)

	base := []equipment.Stack{horse("courser").Stack()}
	withExcluded := []equipment.Stack{
		testutils.NewItem("camel", equipment.SlotHorse).WithHorse("camel", 60).Stack(),
		horse("courser").Stack(),
		horse("warhorse").WithSkill("riding", 200).Stack(),
	}

	expected := selector.PickBest(base, equipment.Empty(), equipment.SlotHorse, false, s.profile)
	actual := selector.PickBest(withExcluded, equipment.Empty(), equipment.SlotHorse, false, s.profile)

	s.Equal("courser", expected.ID())
	s.Equal(expected, actual)
}

func (s *SelectionTestSuite) TestResolve() {
	scores := tableScorer{"left": 10, "right": 10, "strong": 12}
	selector := upgrade.NewSelector(scores, nil)
	settings := s.profile.Settings

	s.Run("both empty", func() {
		decision := selector.Resolve(equipment.Empty(), equipment.Empty(), equipment.SlotHead, settings)
		s.False(decision.HasWinner())
		s.Equal(equipment.PoolNone, decision.Source)
		s.Equal(equipment.SlotHead, decision.Slot)
	})

	s.Run("only left", func() {
		decision := selector.Resolve(helm("left").Element(), equipment.Empty(), equipment.SlotHead, settings)
		s.Equal("left", decision.Winner.ID())
		s.Equal(equipment.PoolLeft, decision.Source)
	})

	s.Run("only right", func() {
		decision := selector.Resolve(equipment.Empty(), helm("right").Element(), equipment.SlotHead, settings)
		s.Equal("right", decision.Winner.ID())
		s.Equal(equipment.PoolRight, decision.Source)
	})

	s.Run("higher left wins", func() {
		decision := selector.Resolve(helm("strong").Element(), helm("right").Element(), equipment.SlotHead, settings)
		s.Equal(equipment.PoolLeft, decision.Source)
	})

	s.Run("ties go to the right pool", func() {
		decision := selector.Resolve(helm("left").Element(), helm("right").Element(), equipment.SlotHead, settings)
		s.Equal("right", decision.Winner.ID())
		s.Equal(equipment.PoolRight, decision.Source)
	})
}

func TestSelectionSuite(t *testing.T) {
	suite.Run(t, new(SelectionTestSuite))
}
