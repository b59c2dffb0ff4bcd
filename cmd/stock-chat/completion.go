package main

import "fmt"

func completionMain(args []string) {
	shell := "bash"
	if len(args) > 0 && args[0] != "" {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	default:
		fatalf("unsupported shell: %s (use bash or zsh)", shell)
	}
}

const bashCompletion = `
_stock_chat_completions()
{
    local cur
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "ask ping personalities completion --config --url --personality --copyable-output" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        ask)
            COMPREPLY=( $(compgen -W "--config --url --personality --p --c --timeout --width --raw" -- "$cur") )
            ;;
        ping)
            COMPREPLY=( $(compgen -W "--config --url --c --timeout" -- "$cur") )
            ;;
        *)
            COMPREPLY=( $(compgen -W "--config --url --personality --p --c --copyable-output" -- "$cur") )
            ;;
    esac
}
complete -F _stock_chat_completions stock-chat
`

const zshCompletion = `
#compdef stock-chat
_stock_chat() {
    local -a subcmds
    subcmds=('ask:send one question and print the reply' 'ping:check the chat service is reachable' 'personalities:list advisor personalities' 'completion:print shell completions')
    if (( CURRENT == 2 )); then
        _describe 'command' subcmds
        return
    fi
    case "$words[2]" in
        completion)
            _values 'shell' bash zsh
            ;;
        ask)
            _arguments '--config[config file]' '--url[service url]' '--personality[advisor]' '--timeout[seconds]' '--width[wrap width]' '--raw[plain reply]'
            ;;
    esac
}
compdef _stock_chat stock-chat
`
