// Command termcalc evaluates arithmetic expressions. With arguments it
// evaluates each argument and prints one result per line; without, it
// runs an interactive prompt that also understands "clear" and "exit".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arithmo/termcalc"
)

func main() {
	log.SetFlags(0)
	var (
		verb string
		echo bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print parsed term sequences")
	flag.Parse()
	verb += "\n"

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if err := eval(arg, verb, echo); err != nil {
				log.Fatal(err)
			}
		}
		return
	}
	repl(verb, echo)
}

func eval(src, verb string, echo bool) error {
	a, err := termcalc.Parse(src)
	if err != nil {
		return err
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	fmt.Printf(verb, a.Evaluate())
	return nil
}

func repl(verb string, echo bool) {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				log.Fatal(err)
			}
			fmt.Println()
			return
		}
		line := strings.ToLower(strings.TrimSpace(in.Text()))
		switch line {
		case "exit":
			return
		case "clear":
			fmt.Print("\x1b[2J\x1b[1;1H")
		default:
			if err := eval(line, verb, echo); err != nil {
				log.Println(err)
			}
		}
	}
}
