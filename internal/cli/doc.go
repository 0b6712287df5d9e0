// Package cli implements the interactive roomsplit terminal client.
//
// The REPL reads one command per line and dispatches it to App methods that
// call the services directly against the local database:
//
//	help                      show available commands
//	add [roommate amount description...]
//	                          record an expense (prompts when no arguments)
//	list | l                  current month expenses
//	show <id>                 one expense
//	delete <id>               delete after a y/N confirmation
//	settle                    who owes whom
//	endmonth                  archive the current month
//	months                    archived months
//	month <id>                one archived month
//	analytics                 monthly totals and roommate statistics
//	export [file]             current month as CSV
//	export-month <id> [file]  archived month as CSV
//	receipt <id> <path>       attach an image receipt
//	unreceipt <id>            remove the receipt
//	lang <en|tr>              switch language
//	theme <light|dark>        switch theme
//	exit | quit               leave
package cli
