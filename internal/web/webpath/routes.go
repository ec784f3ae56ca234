package webpath

const (
	Home = "/"

	Api            = "/api"
	ApiLeaderboard = Api + "/leaderboard"
	ApiGetPlayers  = Api + "/players/:id"
	ApiGetCharts   = Api + "/charts/:id"
	ApiGetResults  = Api + "/results/:id"
	ApiRecompute   = Api + "/recompute"
)
