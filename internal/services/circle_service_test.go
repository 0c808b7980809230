package services

import (
	"testing"

	"finvault/internal/models"
	"finvault/internal/testutil"
)

func intPtr(n int) *int { return &n }

func TestContributeToCircle(t *testing.T) {
	t.Run("completes_circle_at_target", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := s.newFundedUser(t, 100000, 0)
		circle := testutil.CreateTestCircle(t, s.db, userID, 100000, 90000, nil)
		testutil.CreateTestMember(t, s.db, circle.ID, userID)

		result, err := s.circles.ContributeToCircle(userID, circle.ID, 15000)
		testutil.AssertNoError(t, err)

		if result.NewCircleAmount != 105000 || result.CircleStatus != models.CircleStatusCompleted {
			t.Errorf("unexpected circle outcome %+v", result)
		}
		if result.NewContribution != 15000 || result.NewBalance != 85000 {
			t.Errorf("unexpected member outcome %+v", result)
		}
		testutil.AssertBalance(t, s.db, userID, models.AccountTypeMain, 85000)

		got, err := s.circles.GetCircle(circle.ID)
		testutil.AssertNoError(t, err)
		if got.CurrentAmount != 105000 || got.Status != models.CircleStatusCompleted {
			t.Errorf("circle not updated: %+v", got)
		}
		if got.Progress != 105 {
			t.Errorf("expected unclamped progress 105, got %f", got.Progress)
		}

		txn := lastTransaction(t, s.db, userID)
		if txn.Category != "Circle" || txn.Description != "Contribution to circle: "+circle.CircleName {
			t.Errorf("unexpected ledger row %+v", txn)
		}
	})

	t.Run("below_target_stays_active", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := s.newFundedUser(t, 100000, 0)
		circle := testutil.CreateTestCircle(t, s.db, userID, 100000, 0, nil)
		testutil.CreateTestMember(t, s.db, circle.ID, userID)

		result, err := s.circles.ContributeToCircle(userID, circle.ID, 99999)
		testutil.AssertNoError(t, err)
		if result.CircleStatus != models.CircleStatusActive {
			t.Errorf("expected active circle, got %s", result.CircleStatus)
		}
	})

	t.Run("not_a_member", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := s.newFundedUser(t, 100000, 0)
		circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100000, 0, nil)

		_, err := s.circles.ContributeToCircle(userID, circle.ID, 100)
		testutil.AssertAppError(t, err, "NOT_A_MEMBER")
	})

	t.Run("circle_not_found", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := s.newFundedUser(t, 100000, 0)

		_, err := s.circles.ContributeToCircle(userID, testutil.NewUserID(), 100)
		testutil.AssertAppError(t, err, "CIRCLE_NOT_FOUND")
	})

	t.Run("invalid_amount", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := s.newFundedUser(t, 100000, 0)

		_, err := s.circles.ContributeToCircle(userID, testutil.NewUserID(), -5)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("insufficient_balance_changes_nothing", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := s.newFundedUser(t, 1000, 0)
		circle := testutil.CreateTestCircle(t, s.db, userID, 100000, 500, nil)
		member := testutil.CreateTestMember(t, s.db, circle.ID, userID)

		_, err := s.circles.ContributeToCircle(userID, circle.ID, 1001)
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		var reloaded models.CircleMember
		s.db.First(&reloaded, "id = ?", member.ID)
		if reloaded.ContributionAmount != 0 {
			t.Errorf("member contribution changed to %d", reloaded.ContributionAmount)
		}
		got, _ := s.circles.GetCircle(circle.ID)
		if got.CurrentAmount != 500 {
			t.Errorf("circle amount changed to %d", got.CurrentAmount)
		}
		testutil.AssertBalance(t, s.db, userID, models.AccountTypeMain, 1000)
	})
}

func TestJoinCircle(t *testing.T) {
	t.Run("adds_active_member", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100000, 0, nil)
		userID := testutil.NewUserID()

		member, err := s.circles.JoinCircle(userID, circle.ID)
		testutil.AssertNoError(t, err)
		if member.Status != models.MemberStatusActive || member.UserID != userID {
			t.Errorf("unexpected membership %+v", member)
		}

		got, _ := s.circles.GetCircle(circle.ID)
		if got.MemberCount != 1 || len(got.Members) != 1 {
			t.Errorf("expected one member, got count=%d members=%d", got.MemberCount, len(got.Members))
		}
	})

	t.Run("already_member", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100000, 0, nil)
		userID := testutil.NewUserID()

		_, err := s.circles.JoinCircle(userID, circle.ID)
		testutil.AssertNoError(t, err)
		_, err = s.circles.JoinCircle(userID, circle.ID)
		testutil.AssertAppError(t, err, "ALREADY_MEMBER")
	})

	t.Run("full", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		creator := testutil.NewUserID()
		circle := testutil.CreateTestCircle(t, s.db, creator, 100000, 0, intPtr(1))
		testutil.CreateTestMember(t, s.db, circle.ID, creator)

		_, err := s.circles.JoinCircle(testutil.NewUserID(), circle.ID)
		testutil.AssertAppError(t, err, "CIRCLE_FULL")
	})

	t.Run("inactive", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100, 100, nil)
		s.db.Model(circle).Update("status", models.CircleStatusCompleted)

		_, err := s.circles.JoinCircle(testutil.NewUserID(), circle.ID)
		testutil.AssertAppError(t, err, "CIRCLE_INACTIVE")
	})

	t.Run("not_found", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)

		_, err := s.circles.JoinCircle(testutil.NewUserID(), testutil.NewUserID())
		testutil.AssertAppError(t, err, "CIRCLE_NOT_FOUND")
	})

	t.Run("member_count_recomputed_from_rows", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100000, 0, intPtr(3))
		testutil.CreateTestMember(t, s.db, circle.ID, testutil.NewUserID())
		s.db.Model(circle).Update("member_count", 3)

		_, err := s.circles.JoinCircle(testutil.NewUserID(), circle.ID)
		testutil.AssertNoError(t, err)

		got, _ := s.circles.GetCircle(circle.ID)
		if got.MemberCount != 2 {
			t.Errorf("expected drifted counter to be repaired to 2, got %d", got.MemberCount)
		}
	})

	t.Run("rejoin_after_leaving", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100000, 0, nil)
		userID := testutil.NewUserID()

		first, err := s.circles.JoinCircle(userID, circle.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, s.circles.LeaveCircle(userID, circle.ID))

		again, err := s.circles.JoinCircle(userID, circle.ID)
		testutil.AssertNoError(t, err)
		if again.ID != first.ID || again.Status != models.MemberStatusActive {
			t.Errorf("expected the same membership reactivated, got %+v", again)
		}
	})
}

func TestLeaveCircle(t *testing.T) {
	s := newTestServices(t)
	defer s.close(t)
	circle := testutil.CreateTestCircle(t, s.db, testutil.NewUserID(), 100000, 0, nil)
	stayer, leaver := testutil.NewUserID(), testutil.NewUserID()
	for _, id := range []string{stayer, leaver} {
		_, err := s.circles.JoinCircle(id, circle.ID)
		testutil.AssertNoError(t, err)
	}

	testutil.AssertNoError(t, s.circles.LeaveCircle(leaver, circle.ID))

	got, _ := s.circles.GetCircle(circle.ID)
	if got.MemberCount != 1 || len(got.Members) != 1 || got.Members[0].UserID != stayer {
		t.Errorf("expected only %s to remain, got count=%d members=%+v", stayer, got.MemberCount, got.Members)
	}

	err := s.circles.LeaveCircle(leaver, circle.ID)
	testutil.AssertAppError(t, err, "NOT_A_MEMBER")

	err = s.circles.LeaveCircle(leaver, testutil.NewUserID())
	testutil.AssertAppError(t, err, "CIRCLE_NOT_FOUND")
}

func TestCreateCircle(t *testing.T) {
	t.Run("creator_is_first_member", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := testutil.NewUserID()
		private := false

		circle, err := s.circles.CreateCircle(userID, CreateCircleInput{
			CircleName: "Holiday Fund", TargetAmount: 500000, IsPublic: &private,
		})
		testutil.AssertNoError(t, err)

		got, err := s.circles.GetCircle(circle.ID)
		testutil.AssertNoError(t, err)
		if got.MemberCount != 1 || len(got.Members) != 1 || got.Members[0].UserID != userID {
			t.Errorf("expected creator as sole member, got %+v", got.Members)
		}
		if got.IsPublic || got.Category != "General" {
			t.Errorf("expected private General circle, got public=%v category=%q", got.IsPublic, got.Category)
		}
	})

	t.Run("validation", func(t *testing.T) {
		s := newTestServices(t)
		defer s.close(t)
		userID := testutil.NewUserID()

		_, err := s.circles.CreateCircle(userID, CreateCircleInput{TargetAmount: 100})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = s.circles.CreateCircle(userID, CreateCircleInput{CircleName: "x"})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		_, err = s.circles.CreateCircle(userID, CreateCircleInput{CircleName: "x", TargetAmount: 100, MaxMembers: intPtr(0)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListCircles(t *testing.T) {
	s := newTestServices(t)
	defer s.close(t)
	me, other := testutil.NewUserID(), testutil.NewUserID()
	private := false

	mine, err := s.circles.CreateCircle(me, CreateCircleInput{CircleName: "Mine", TargetAmount: 100, IsPublic: &private})
	testutil.AssertNoError(t, err)
	joined, err := s.circles.CreateCircle(other, CreateCircleInput{CircleName: "Joined", TargetAmount: 100})
	testutil.AssertNoError(t, err)
	_, err = s.circles.JoinCircle(me, joined.ID)
	testutil.AssertNoError(t, err)
	_, err = s.circles.CreateCircle(other, CreateCircleInput{CircleName: "Stranger", TargetAmount: 100})
	testutil.AssertNoError(t, err)

	tests := []struct {
		filter models.CircleFilter
		want   int
	}{
		{models.CircleFilterAll, 3},
		{"", 3},
		{models.CircleFilterMine, 2},
		{models.CircleFilterPublic, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			circles, err := s.circles.ListCircles(me, tt.filter)
			testutil.AssertNoError(t, err)
			if len(circles) != tt.want {
				t.Errorf("expected %d circles, got %d", tt.want, len(circles))
			}
		})
	}

	circles, _ := s.circles.ListCircles(me, models.CircleFilterMine)
	for _, c := range circles {
		if c.ID != mine.ID && c.ID != joined.ID {
			t.Errorf("unexpected circle %s in mine", c.CircleName)
		}
	}

	_, err = s.circles.ListCircles(me, "everything")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
