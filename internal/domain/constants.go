package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Event kinds pushed by the Q&A platform.
const (
	EventQuestionPost     = "q_post"
	EventAnswerPost       = "a_post"
	EventCommentPost      = "c_post"
	EventQuestionVoteUp   = "q_vote_up"
	EventQuestionVoteDown = "q_vote_down"
	EventAnswerVoteUp     = "a_vote_up"
	EventAnswerVoteDown   = "a_vote_down"
	EventCommentVoteUp    = "c_vote_up"
	EventCommentVoteDown  = "c_vote_down"
	EventAnswerSelect     = "a_select"
	EventAnswerUnselect   = "a_unselect"
	EventUserRegister     = "u_register"
)

// Activity types recorded in the ledger.
const (
	ActivityQuestionPosted    = "question_posted"
	ActivityAnswerPosted      = "answer_posted"
	ActivityCommentPosted     = "comment_posted"
	ActivityQuestionVotedUp   = "question_voted_up"
	ActivityQuestionVotedDown = "question_voted_down"
	ActivityAnswerVotedUp     = "answer_voted_up"
	ActivityAnswerVotedDown   = "answer_voted_down"
	ActivityCommentVotedUp    = "comment_voted_up"
	ActivityCommentVotedDown  = "comment_voted_down"
	ActivityAnswerSelected    = "answer_selected"
	ActivityAnswerUnselected  = "answer_unselected"
	ActivityUserRegistered    = "user_registered"
	ActivityQuestionVotedOn   = "question_voted_on"
	ActivityAnswerVotedOn     = "answer_voted_on"
	ActivityCommentVotedOn    = "comment_voted_on"
)

// Post content types, matching the platform's single-letter markers.
const (
	PostTypeQuestion = "Q"
	PostTypeAnswer   = "A"
	PostTypeComment  = "C"
)

// Tracker settings keys.
const (
	SettingEnabled          = "point_history_enabled"
	SettingTrackQuestions   = "point_history_track_questions"
	SettingTrackAnswers     = "point_history_track_answers"
	SettingTrackComments    = "point_history_track_comments"
	SettingTrackVotes       = "point_history_track_votes"
	SettingTrackBestAnswers = "point_history_track_best_answers"
	SettingTrackBonus       = "point_history_track_bonus"
	SettingMaxLogsPerUser   = "point_history_max_logs_per_user"
	SettingCleanupDays      = "point_history_cleanup_days"
	SettingWidgetEnabled    = "point_history_widget_enabled"
	SettingWidgetLimit      = "point_history_widget_limit"
)

// Point rule keys. These mirror the platform's point options and live in the
// same settings table so admins can retune them at any time.
const (
	PointsPostQuestion   = "points_post_q"
	PointsPostAnswer     = "points_post_a"
	PointsVoteUpQ        = "points_vote_up_q"
	PointsVoteDownQ      = "points_vote_down_q"
	PointsVoteUpA        = "points_vote_up_a"
	PointsVoteDownA      = "points_vote_down_a"
	PointsVoteUpC        = "points_vote_up_c"
	PointsVoteDownC      = "points_vote_down_c"
	PointsAnswerSelected = "points_a_selected"
	PointsBase           = "points_base"
	PointsPerQVotedUp    = "points_per_q_voted_up"
	PointsPerQVotedDown  = "points_per_q_voted_down"
	PointsPerAVotedUp    = "points_per_a_voted_up"
	PointsPerAVotedDown  = "points_per_a_voted_down"
	PointsPerCVotedUp    = "points_per_c_voted_up"
	PointsPerCVotedDown  = "points_per_c_voted_down"
)

// SettingDefaults seeds the settings table on first boot and backs the typed
// getters when a stored value is missing or unparseable.
var SettingDefaults = map[string]string{
	SettingEnabled:          "1",
	SettingTrackQuestions:   "1",
	SettingTrackAnswers:     "1",
	SettingTrackComments:    "1",
	SettingTrackVotes:       "1",
	SettingTrackBestAnswers: "1",
	SettingTrackBonus:       "1",
	SettingMaxLogsPerUser:   "1000",
	SettingCleanupDays:      "365",
	SettingWidgetEnabled:    "1",
	SettingWidgetLimit:      "10",

	PointsPostQuestion:   "5",
	PointsPostAnswer:     "10",
	PointsVoteUpQ:        "1",
	PointsVoteDownQ:      "1",
	PointsVoteUpA:        "1",
	PointsVoteDownA:      "1",
	PointsVoteUpC:        "0",
	PointsVoteDownC:      "0",
	PointsAnswerSelected: "15",
	PointsBase:           "10",
	PointsPerQVotedUp:    "2",
	PointsPerQVotedDown:  "1",
	PointsPerAVotedUp:    "2",
	PointsPerAVotedDown:  "2",
	PointsPerCVotedUp:    "1",
	PointsPerCVotedDown:  "1",
}
