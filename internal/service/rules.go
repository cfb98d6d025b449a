package service

import "pointtrail/internal/domain"

// Attribution says which user a ledger entry is credited to.
type Attribution int

const (
	AttrActor Attribution = iota
	AttrPostAuthor
)

// SelfRule maps a platform event to the entry written for the event itself.
// PointKey empty means the entry always logs zero points (comments).
type SelfRule struct {
	Activity    string
	ToggleKey   string
	Description string
	PointKey    string
	Negate      bool
	Attribution Attribution
}

var selfRules = map[string]SelfRule{
	domain.EventQuestionPost: {
		Activity:    domain.ActivityQuestionPosted,
		ToggleKey:   domain.SettingTrackQuestions,
		Description: "Posted a question",
		PointKey:    domain.PointsPostQuestion,
	},
	domain.EventAnswerPost: {
		Activity:    domain.ActivityAnswerPosted,
		ToggleKey:   domain.SettingTrackAnswers,
		Description: "Posted an answer",
		PointKey:    domain.PointsPostAnswer,
	},
	domain.EventCommentPost: {
		Activity:    domain.ActivityCommentPosted,
		ToggleKey:   domain.SettingTrackComments,
		Description: "Posted a comment",
	},
	domain.EventQuestionVoteUp: {
		Activity:    domain.ActivityQuestionVotedUp,
		ToggleKey:   domain.SettingTrackVotes,
		Description: "Voted up a question",
		PointKey:    domain.PointsVoteUpQ,
	},
	domain.EventQuestionVoteDown: {
		Activity:    domain.ActivityQuestionVotedDown,
		ToggleKey:   domain.SettingTrackVotes,
		Description: "Voted down a question",
		PointKey:    domain.PointsVoteDownQ,
	},
	domain.EventAnswerVoteUp: {
		Activity:    domain.ActivityAnswerVotedUp,
		ToggleKey:   domain.SettingTrackVotes,
		Description: "Voted up an answer",
		PointKey:    domain.PointsVoteUpA,
	},
	domain.EventAnswerVoteDown: {
		Activity:    domain.ActivityAnswerVotedDown,
		ToggleKey:   domain.SettingTrackVotes,
		Description: "Voted down an answer",
		PointKey:    domain.PointsVoteDownA,
	},
	domain.EventCommentVoteUp: {
		Activity:    domain.ActivityCommentVotedUp,
		ToggleKey:   domain.SettingTrackVotes,
		Description: "Voted up a comment",
		PointKey:    domain.PointsVoteUpC,
	},
	domain.EventCommentVoteDown: {
		Activity:    domain.ActivityCommentVotedDown,
		ToggleKey:   domain.SettingTrackVotes,
		Description: "Voted down a comment",
		PointKey:    domain.PointsVoteDownC,
	},
	domain.EventAnswerSelect: {
		Activity:    domain.ActivityAnswerSelected,
		ToggleKey:   domain.SettingTrackBestAnswers,
		Description: "Answer selected as best",
		PointKey:    domain.PointsAnswerSelected,
		Attribution: AttrPostAuthor,
	},
	domain.EventAnswerUnselect: {
		Activity:    domain.ActivityAnswerUnselected,
		ToggleKey:   domain.SettingTrackBestAnswers,
		Description: "Answer unselected as best",
		PointKey:    domain.PointsAnswerSelected,
		Negate:      true,
		Attribution: AttrPostAuthor,
	},
	domain.EventUserRegister: {
		Activity:    domain.ActivityUserRegistered,
		ToggleKey:   domain.SettingTrackBonus,
		Description: "User registration bonus",
		PointKey:    domain.PointsBase,
	},
}

// ReceivedRule maps a vote event plus the voted post's type to the entry
// credited to the content owner. Down-vote rules negate their point value.
type ReceivedRule struct {
	Activity    string
	Description string
	PointKey    string
	Negate      bool
}

type receivedKey struct {
	event    string
	postType string
}

var receivedRules = map[receivedKey]ReceivedRule{
	{domain.EventQuestionVoteUp, domain.PostTypeQuestion}: {
		Activity:    domain.ActivityQuestionVotedOn,
		Description: "Question received a vote",
		PointKey:    domain.PointsPerQVotedUp,
	},
	{domain.EventQuestionVoteDown, domain.PostTypeQuestion}: {
		Activity:    domain.ActivityQuestionVotedOn,
		Description: "Question received a vote",
		PointKey:    domain.PointsPerQVotedDown,
		Negate:      true,
	},
	{domain.EventAnswerVoteUp, domain.PostTypeAnswer}: {
		Activity:    domain.ActivityAnswerVotedOn,
		Description: "Answer received a vote",
		PointKey:    domain.PointsPerAVotedUp,
	},
	{domain.EventAnswerVoteDown, domain.PostTypeAnswer}: {
		Activity:    domain.ActivityAnswerVotedOn,
		Description: "Answer received a vote",
		PointKey:    domain.PointsPerAVotedDown,
		Negate:      true,
	},
	{domain.EventCommentVoteUp, domain.PostTypeComment}: {
		Activity:    domain.ActivityCommentVotedOn,
		Description: "Comment received a vote",
		PointKey:    domain.PointsPerCVotedUp,
	},
	{domain.EventCommentVoteDown, domain.PostTypeComment}: {
		Activity:    domain.ActivityCommentVotedOn,
		Description: "Comment received a vote",
		PointKey:    domain.PointsPerCVotedDown,
		Negate:      true,
	},
}

// SelfRuleFor returns the direct rule for a platform event kind.
func SelfRuleFor(event string) (SelfRule, bool) {
	r, ok := selfRules[event]
	return r, ok
}

// ReceivedRuleFor returns the content-owner credit rule for a vote event on a
// post of the given type.
func ReceivedRuleFor(event, postType string) (ReceivedRule, bool) {
	r, ok := receivedRules[receivedKey{event, postType}]
	return r, ok
}
