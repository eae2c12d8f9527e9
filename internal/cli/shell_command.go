package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"todo-tracker/internal/api"
)

// Menu choices presented by the interactive shell
const (
	choiceShow     = "1"
	choiceAdd      = "2"
	choicePriority = "3"
	choiceDelete   = "4"
	choiceExit     = "5"
)

// ShellCommand runs the interactive menu loop
type ShellCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	reader       LineReader
}

// NewShellCommand creates a new shell command handler
func NewShellCommand(app *App, reader LineReader) *ShellCommand {
	return &ShellCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		reader:       reader,
	}
}

// Execute runs the menu loop until the user exits or input is closed
func (c *ShellCommand) Execute(ctx context.Context) error {
	c.printHeader()
	c.printMenu()

	for {
		choice, err := c.reader.ReadLine("Enter your choice (1..5): ")
		if err != nil {
			if isEndOfInput(err) {
				fmt.Println("Bye!")
				return nil
			}
			return err
		}

		done, err := c.executeChoice(ctx, strings.TrimSpace(choice))
		if err != nil {
			if isEndOfInput(err) {
				fmt.Println("Bye!")
				return nil
			}
			// Operation errors are reported and the shell keeps running
			fmt.Println(c.errorHandler.HandleSimple(err))
		}
		if done {
			return nil
		}
		fmt.Println()
		c.printMenu()
	}
}

// executeChoice dispatches a single menu selection. It returns true when the
// user chose to exit.
func (c *ShellCommand) executeChoice(ctx context.Context, choice string) (bool, error) {
	switch choice {
	case choiceShow:
		return false, c.showTasks(ctx)
	case choiceAdd:
		return false, c.addTask(ctx)
	case choicePriority:
		return false, c.changePriority(ctx)
	case choiceDelete:
		return false, c.deleteTask(ctx)
	case choiceExit:
		fmt.Println("You exit the program. Bye!")
		return true, nil
	default:
		fmt.Println("Enter a number to choose an option as shown in the menu.")
		return false, nil
	}
}

func (c *ShellCommand) showTasks(ctx context.Context) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("There are no tasks.")
		return nil
	}
	for _, task := range tasks {
		fmt.Println(task.String())
	}
	return nil
}

func (c *ShellCommand) addTask(ctx context.Context) error {
	name, err := c.readTaskName()
	if err != nil {
		return err
	}

	priority, err := c.readPriority("Enter a priority: ")
	if err != nil {
		return err
	}

	task, err := c.api.AddTask(ctx, name, priority)
	if err != nil {
		return err
	}

	fmt.Printf("Task %q with priority %d has been added with id %d.\n", task.Name, task.Priority, task.ID)
	return nil
}

func (c *ShellCommand) changePriority(ctx context.Context) error {
	priority, err := c.readPriority("Enter a new priority: ")
	if err != nil {
		return err
	}

	id, err := c.readTaskID("Enter the task id: ")
	if err != nil {
		return err
	}

	if err := c.api.UpdateTaskPriority(ctx, id, priority); err != nil {
		return err
	}

	fmt.Printf("New priority %d has been set on task id %d.\n", priority, id)
	return nil
}

func (c *ShellCommand) deleteTask(ctx context.Context) error {
	id, err := c.readTaskID("Enter id to delete: ")
	if err != nil {
		return err
	}

	if err := c.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	fmt.Printf("Task with id %d has been deleted.\n", id)
	return nil
}

// readTaskName prompts until a non-empty name is entered
func (c *ShellCommand) readTaskName() (string, error) {
	for {
		name, err := c.reader.ReadLine("Enter a task name: ")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Println("Task name must not be empty.")
			continue
		}
		return name, nil
	}
}

// readPriority prompts until an integer is entered. Range checking is the
// store's job; only the integer shape is enforced here.
func (c *ShellCommand) readPriority(prompt string) (int, error) {
	for {
		input, err := c.reader.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			fmt.Println("Priority must not be empty. Enter the priority!")
			continue
		}
		priority, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Invalid input. Please enter a number between 1..10 inclusive.")
			continue
		}
		return priority, nil
	}
}

// readTaskID prompts until an integer id is entered
func (c *ShellCommand) readTaskID(prompt string) (int64, error) {
	for {
		input, err := c.reader.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			fmt.Println("The id must not be empty. Please enter an id!")
			continue
		}
		id, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			fmt.Println("Invalid id. Please enter an integer number.")
			continue
		}
		return id, nil
	}
}

func (c *ShellCommand) printHeader() {
	fmt.Println("+" + strings.Repeat("-", 50) + "+")
	fmt.Println("|                  ToDo Application                |")
	fmt.Println("+" + strings.Repeat("-", 50) + "+")
}

func (c *ShellCommand) printMenu() {
	fmt.Println("M E N U")
	fmt.Println("1. Show tasks")
	fmt.Println("2. Add task")
	fmt.Println("3. Change priority")
	fmt.Println("4. Delete task")
	fmt.Println("5. Exit")
}

// isEndOfInput reports whether the error means the user closed the input
// stream (Ctrl-D) or interrupted the prompt (Ctrl-C).
func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
