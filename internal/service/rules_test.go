package service

import (
	"testing"

	"pointtrail/internal/domain"
)

func TestSelfRuleCoverage(t *testing.T) {
	events := []string{
		domain.EventQuestionPost,
		domain.EventAnswerPost,
		domain.EventCommentPost,
		domain.EventQuestionVoteUp,
		domain.EventQuestionVoteDown,
		domain.EventAnswerVoteUp,
		domain.EventAnswerVoteDown,
		domain.EventCommentVoteUp,
		domain.EventCommentVoteDown,
		domain.EventAnswerSelect,
		domain.EventAnswerUnselect,
		domain.EventUserRegister,
	}
	for _, ev := range events {
		rule, ok := SelfRuleFor(ev)
		if !ok {
			t.Errorf("SelfRuleFor(%q) missing", ev)
			continue
		}
		if rule.Activity == "" {
			t.Errorf("SelfRuleFor(%q) has empty activity", ev)
		}
		if rule.Description == "" {
			t.Errorf("SelfRuleFor(%q) has empty description", ev)
		}
	}
}

func TestSelfRuleForUnknownEvent(t *testing.T) {
	if _, ok := SelfRuleFor("u_password_reset"); ok {
		t.Error("SelfRuleFor should not match unknown event kinds")
	}
}

func TestCommentPostLogsZeroPoints(t *testing.T) {
	rule, ok := SelfRuleFor(domain.EventCommentPost)
	if !ok {
		t.Fatal("missing rule for c_post")
	}
	if rule.PointKey != "" {
		t.Errorf("comment rule PointKey = %q, want empty (always zero points)", rule.PointKey)
	}
}

func TestBestAnswerRulesCreditPostAuthor(t *testing.T) {
	sel, _ := SelfRuleFor(domain.EventAnswerSelect)
	if sel.Attribution != AttrPostAuthor {
		t.Error("a_select should credit the post author")
	}
	if sel.Negate {
		t.Error("a_select should not negate its point value")
	}
	unsel, _ := SelfRuleFor(domain.EventAnswerUnselect)
	if unsel.Attribution != AttrPostAuthor {
		t.Error("a_unselect should credit the post author")
	}
	if !unsel.Negate {
		t.Error("a_unselect should apply the negated selection value")
	}
	if sel.PointKey != unsel.PointKey {
		t.Errorf("select/unselect point keys differ: %q vs %q", sel.PointKey, unsel.PointKey)
	}
}

func TestReceivedRuleMatrix(t *testing.T) {
	tests := []struct {
		event    string
		postType string
		want     bool
		negate   bool
		activity string
	}{
		{domain.EventQuestionVoteUp, domain.PostTypeQuestion, true, false, domain.ActivityQuestionVotedOn},
		{domain.EventQuestionVoteDown, domain.PostTypeQuestion, true, true, domain.ActivityQuestionVotedOn},
		{domain.EventAnswerVoteUp, domain.PostTypeAnswer, true, false, domain.ActivityAnswerVotedOn},
		{domain.EventAnswerVoteDown, domain.PostTypeAnswer, true, true, domain.ActivityAnswerVotedOn},
		{domain.EventCommentVoteUp, domain.PostTypeComment, true, false, domain.ActivityCommentVotedOn},
		{domain.EventCommentVoteDown, domain.PostTypeComment, true, true, domain.ActivityCommentVotedOn},
		// Mismatched post types never credit.
		{domain.EventQuestionVoteUp, domain.PostTypeAnswer, false, false, ""},
		{domain.EventAnswerVoteUp, domain.PostTypeQuestion, false, false, ""},
		// Non-vote events have no received rule.
		{domain.EventAnswerSelect, domain.PostTypeAnswer, false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.event+"/"+tt.postType, func(t *testing.T) {
			rule, ok := ReceivedRuleFor(tt.event, tt.postType)
			if ok != tt.want {
				t.Fatalf("ReceivedRuleFor(%q, %q) ok = %v, want %v", tt.event, tt.postType, ok, tt.want)
			}
			if !ok {
				return
			}
			if rule.Negate != tt.negate {
				t.Errorf("Negate = %v, want %v", rule.Negate, tt.negate)
			}
			if rule.Activity != tt.activity {
				t.Errorf("Activity = %q, want %q", rule.Activity, tt.activity)
			}
		})
	}
}
