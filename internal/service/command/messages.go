package command

// Fixed reply texts. Slash-command replies use Slack mrkdwn, so the
// asterisks below render bold.

const rideRequestFormatError = "To request a ride please use the format " +
	"*/uber ride [origin] to [destination]*.\n" +
	"For best results, specify a city or zip code.\n" +
	"Ex: */uber ride 1061 Market Street San Francisco to 405 Howard St*"

const unknownCommandError = "Sorry, we didn't quite catch that command. " +
	"Try */uber help* for a list."

const helpText = "Try these commands:\n" +
	"- ride [origin address] to [destination address]\n" +
	"- estimate [origin address] to [destination address]\n" +
	"- help"

const locationNotFoundError = "Please enter a valid address. " +
	"Be as specific as possible (e.g. include city)."
