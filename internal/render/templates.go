package render

const lanesHTML = `<div class="lanes" id="board">
{{- range .Lanes}}
  <section class="card lane" id="{{.ID}}">
    <h2 class="card-header">{{.Title}}</h2>
    <div class="card-body" id="{{.BodyID}}" data-lane="{{.ID}}">
    {{- range .Cards}}
      <div class="task-card {{.ColorClass}}" id="task-{{.ID}}" data-task-id="{{.ID}}" data-urgency="{{.Urgency}}" draggable="true">
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <p>Deadline: {{.Deadline}}</p>
        <form method="post" action="/tasks/{{.ID}}/delete">
          <button type="submit" class="delete-btn" data-id="{{.ID}}">Delete</button>
        </form>
      </div>
    {{- end}}
    </div>
  </section>
{{- end}}
</div>`

const pageHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Task Board</title>
    <style>
      body { font-family: sans-serif; margin: 0; background: #f4f5f7; }
      header { padding: 1rem 2rem; background: #263238; color: #fff; }
      .lanes { display: flex; gap: 1rem; padding: 1rem 2rem; }
      .lane { flex: 1; background: #fff; border-radius: 6px; }
      .card-header { margin: 0; padding: .75rem 1rem; font-size: 1.1rem; border-bottom: 1px solid #ddd; }
      .card-body { min-height: 300px; padding: .75rem; }
      .task-card { border-radius: 6px; padding: .5rem .75rem; margin-bottom: .75rem; cursor: grab; color: #fff; transition: transform .1s; }
      .task-card h3 { margin: .25rem 0; }
      .bg-danger { background: #c62828; }
      .bg-warning { background: #f9a825; color: #222; }
      .bg-success { background: #2e7d32; }
      .delete-btn { border: 1px solid #fff; background: transparent; color: inherit; cursor: pointer; }
      dialog form label { display: block; margin-top: .5rem; }
    </style>
  </head>
  <body>
    <header>
      <h1>Task Board</h1>
      <p>Today: {{.Today.Format "2006-01-02"}} &middot; <a href="/report" style="color:#fff">Download report</a></p>
      <button type="button" id="add-task">Add Task</button>
    </header>

    <dialog id="formModal">
      <form id="taskForm" method="post" action="/tasks">
        <label>Title <input type="text" id="title" name="title" /></label>
        <label>Description <textarea id="description" name="description"></textarea></label>
        <label>Deadline <input type="date" id="deadline" name="deadline" /></label>
        <button type="submit">Add Task</button>
        <button type="button" id="close-dialog">Cancel</button>
      </form>
    </dialog>

    <main>
{{template "lanes" .}}
    </main>

    <script>
      (function () {
        var modal = document.getElementById('formModal');
        document.getElementById('add-task').addEventListener('click', function () { modal.showModal(); });
        document.getElementById('close-dialog').addEventListener('click', function () { modal.close(); });

        function bind() {
          document.querySelectorAll('.task-card').forEach(function (card) {
            card.addEventListener('dragstart', function (ev) {
              ev.dataTransfer.setData('text/plain', card.dataset.taskId);
              card.style.transform = 'scale(1.1)';
            });
            card.addEventListener('dragend', function () {
              card.style.transform = 'scale(1)';
            });
          });
          document.querySelectorAll('.card-body').forEach(function (body) {
            body.addEventListener('dragover', function (ev) { ev.preventDefault(); });
            body.addEventListener('drop', function (ev) {
              ev.preventDefault();
              var form = new URLSearchParams();
              form.set('task_id', ev.dataTransfer.getData('text/plain'));
              form.set('lane', body.dataset.lane);
              fetch('/drop', { method: 'POST', body: form })
                .then(function (resp) {
                  if (!resp.ok) {
                    location.reload();
                    return;
                  }
                  return resp.text().then(function (html) {
                    document.getElementById('board').outerHTML = html;
                    bind();
                  });
                });
            });
          });
        }

        bind();
      })();
    </script>
  </body>
</html>
`
