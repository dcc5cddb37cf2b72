package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okian/teamboard/internal/domain/catalog"
	"github.com/okian/teamboard/internal/domain/model"
	"github.com/okian/teamboard/internal/report"
)

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func scoreCmd(c *cli) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "score [employee-id]",
		Short: "Print performance scores, for one employee or the whole roster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := c.service()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				s, err := svc.ScoreEmployee(ctx, id, period)
				if err != nil {
					return err
				}
				return report.Score(cmd.OutOrStdout(), s)
			}
			scores, err := svc.ScoreAll(ctx, period)
			if err != nil {
				return err
			}
			p := period
			if p == "" {
				p = c.cfg.EvaluationPeriod
			}
			return report.Scores(cmd.OutOrStdout(), p, scores)
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "evaluation period label (default: config evaluation_period)")
	return cmd
}

func salaryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "salary <employee-id>",
		Short: "Compare an employee's salary with the market benchmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, err := c.service()
			if err != nil {
				return err
			}
			emp, err := svc.Employee(ctx, id)
			if err != nil {
				return err
			}
			cmp, err := svc.CompareSalary(ctx, id)
			if err != nil {
				return err
			}
			return report.Salary(cmd.OutOrStdout(), emp.Name, cmp)
		},
	}
}

func workloadCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Print allocation totals and overload risk per employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}
			return report.Workload(cmd.OutOrStdout(), svc.Employees(cmd.Context()))
		},
	}
}

func catalogCmd(c *cli) *cobra.Command {
	var team, area string
	cmd := &cobra.Command{
		Use:   "catalog [task-id]",
		Short: "List task categories, or the skills of one task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return report.Tasks(cmd.OutOrStdout(), filterTasks(model.TeamKind(team), model.Area(area)))
			}
			svc, err := c.service()
			if err != nil {
				return err
			}
			id := model.TaskID(args[0])
			res, found := svc.SkillsForTask(cmd.Context(), id)
			task, _ := catalog.Task(id)
			if !found {
				task = model.TaskDefinition{ID: id, Name: string(id), Description: "unknown task category"}
			}
			return report.TaskSkills(cmd.OutOrStdout(), task, res)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "filter by team kind (AX, AI_ENGINEERING)")
	cmd.Flags().StringVar(&area, "area", "", "filter by area (e.g. AI_AGENT)")
	return cmd
}

func filterTasks(team model.TeamKind, area model.Area) []model.TaskDefinition {
	var tasks []model.TaskDefinition
	switch {
	case team != "":
		tasks = catalog.TasksByTeam(team)
	case area != "":
		tasks = catalog.TasksByArea(area)
	default:
		return catalog.Tasks()
	}
	if team == "" || area == "" {
		return tasks
	}
	out := tasks[:0]
	for i := range tasks {
		if tasks[i].Area == area {
			out = append(out, tasks[i])
		}
	}
	return out
}

func exportCmd(c *cli) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write employees, projects and tasks CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := c.service()
			if err != nil {
				return err
			}
			files, err := svc.Export(ctx, dir)
			if err != nil {
				return err
			}
			s := svc.Summary(ctx)
			return report.Lines(cmd.OutOrStdout(), "Export",
				"employees", fmt.Sprintf("%d (AX %d, AI engineering %d)", s.Employees,
					s.EmployeesByTeam[model.TeamAX], s.EmployeesByTeam[model.TeamAIEngineering]),
				"projects", fmt.Sprintf("%d (%d collaboration)", s.Projects, s.Collaboration),
				"tasks", strconv.Itoa(s.Tasks),
				"employees csv", files.Employees,
				"projects csv", files.Projects,
				"tasks csv", files.Tasks,
			)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

func archiveCmd(c *cli) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "archive <project-id>",
		Short: "Push a project and its tasks to Notion, falling back to the local archive",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := c.service()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if list {
				entries, err := svc.LocalArchive(ctx)
				if err != nil {
					return err
				}
				kv := make([]string, 0, 2*len(entries))
				for _, e := range entries {
					kv = append(kv, fmt.Sprint(e["kind"]), fmt.Sprintf("%v (%v)", e["name"], e["archived_at"]))
				}
				return report.Lines(out, fmt.Sprintf("Local archive: %d records", len(entries)), kv...)
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			outcomes, archiveErr := svc.ArchiveNow(ctx, id)
			if archiveErr != nil && len(outcomes) == 0 {
				return archiveErr
			}
			kv := make([]string, 0, 2*len(outcomes))
			for _, o := range outcomes {
				status := o.Target
				if !o.Result.Success {
					status = "failed: " + o.Result.Error
				}
				kv = append(kv, o.Key, status)
			}
			title := fmt.Sprintf("Archived project %d", id)
			if len(outcomes) == 0 && archiveErr == nil {
				title += ": already archived"
			}
			if err := report.Lines(out, title, kv...); err != nil {
				return err
			}
			return archiveErr
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the local archive instead of pushing")
	return cmd
}
