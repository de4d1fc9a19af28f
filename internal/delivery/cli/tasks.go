package cli

import (
	"errors"
	"fmt"

	"github.com/abdulwaheedrrr/go-assistant/internal/models"
	"github.com/abdulwaheedrrr/go-assistant/internal/services"
)

func (r *Router) handleAddTask(payload string) {
	if payload == "" {
		r.notifier.Say("Please provide a task description.")
		return
	}

	fields := splitFields(payload)
	if len(fields) > 3 || fields[0] == "" {
		r.notifier.Say(`Use format: addtask "description[;due][;priority]"`)
		return
	}

	params := services.AddTaskParams{Description: fields[0]}
	if len(fields) > 1 {
		params.Due = fields[1]
	}
	if len(fields) > 2 {
		params.Priority = fields[2]
	}

	task, err := r.tasks.Add(params)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTaskPriority) {
			r.notifier.Say("Invalid priority. Use low, medium or high.")
			return
		}
		r.logger.Error().
			Err(err).
			Msg("failed to add task")
		r.notifier.Say("Could not save the task.")
		return
	}

	r.notifier.Say(fmt.Sprintf("Task %d added: %s", task.ID, task.Description))
}

func (r *Router) handleShowTasks() {
	tasks := r.tasks.List()
	if len(tasks) == 0 {
		r.notifier.Say("No tasks found.")
		return
	}

	r.notifier.Say(fmt.Sprintf("You have %d task(s):", len(tasks)))
	for _, task := range tasks {
		r.notifier.Say(formatTask(task))
	}
}

func formatTask(task models.Task) string {
	line := fmt.Sprintf("%d. %s [%s] (%s)",
		task.ID, task.Description, task.Status, task.Priority)
	if task.Due != "" {
		line += ", due " + task.Due
	}
	return line
}

func (r *Router) handleCompleteTask(payload string) {
	id, err := parseID(payload)
	if err != nil {
		r.notifier.Say("Please provide the task number.")
		return
	}

	task, err := r.tasks.Complete(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			r.notifier.Say(fmt.Sprintf("Invalid task id: %d", id))
			return
		}
		r.logger.Error().
			Err(err).
			Msg("failed to complete task")
		r.notifier.Say("Could not save the task.")
		return
	}

	r.notifier.Say("Marked as complete: " + task.Description)
}

func (r *Router) handleRemoveTask(payload string) {
	id, err := parseID(payload)
	if err != nil {
		r.notifier.Say("Please provide the task number.")
		return
	}

	task, err := r.tasks.Remove(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			r.notifier.Say(fmt.Sprintf("Invalid task id: %d", id))
			return
		}
		r.logger.Error().
			Err(err).
			Msg("failed to remove task")
		r.notifier.Say("Could not save the tasks.")
		return
	}

	r.notifier.Say("Removed task: " + task.Description)
}
